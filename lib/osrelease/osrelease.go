// Package osrelease reads freedesktop os-release data describing the host
// Linux distribution.
package osrelease

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/duke-git/lancet/v2/fileutil"
)

// ErrNotFound is returned when no os-release file exists on the host.
var ErrNotFound = errors.New("no os-release file found")

// searchPaths lists the os-release locations in lookup order, per the
// freedesktop spec.
var searchPaths = []string{"/etc/os-release", "/usr/lib/os-release"} //nolint:gochecknoglobals // Fixed lookup order

// OSRelease describes host operating system distribution information.
type OSRelease struct {
	ID         string            `json:"id"`          // ID is the lower-case distribution identifier (e.g. "ubuntu").
	IDLike     string            `json:"id_like"`     // IDLike lists space-separated related distributions.
	Name       string            `json:"name"`        // Name is the distribution name without version information.
	Version    string            `json:"version"`     // Version is the human-readable version string.
	VersionID  string            `json:"version_id"`  // VersionID is the machine-parsable version identifier.
	PrettyName string            `json:"pretty_name"` // PrettyName is the single-line display name.
	Extra      map[string]string `json:"-"`           // Extra holds any remaining os-release keys.
}

// String returns a human readable representation of the release.
func (o *OSRelease) String() string {
	if o.PrettyName != "" {
		return o.PrettyName
	}

	if o.Name != "" {
		return o.Name
	}

	return strings.TrimSpace(o.ID + " " + o.Version)
}

// Discover locates and parses the host os-release file. It returns
// ErrNotFound when neither standard location exists.
func Discover() (*OSRelease, error) {
	return discoverFrom(searchPaths)
}

func discoverFrom(paths []string) (*OSRelease, error) {
	for _, p := range paths {
		if !fileutil.IsExist(p) {
			continue
		}

		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("opening os-release file %s: %w", p, err)
		}

		defer f.Close() //nolint:errcheck // Read-only file

		return Parse(f)
	}

	return nil, ErrNotFound
}

// Parse reads os-release formatted KEY=VALUE lines. Comments, blank lines and
// malformed lines are skipped. Quoted values are unquoted.
func Parse(r io.Reader) (*OSRelease, error) {
	release := &OSRelease{Extra: map[string]string{}}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			continue
		}

		setField(release, strings.TrimSpace(key), unquote(strings.TrimSpace(value)))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading os-release data: %w", err)
	}

	return release, nil
}

func setField(release *OSRelease, key, value string) {
	switch key {
	case "ID":
		release.ID = value
	case "ID_LIKE":
		release.IDLike = value
	case "NAME":
		release.Name = value
	case "VERSION":
		release.Version = value
	case "VERSION_ID":
		release.VersionID = value
	case "PRETTY_NAME":
		release.PrettyName = value
	default:
		release.Extra[key] = value
	}
}

// unquote strips surrounding double or single quotes from an os-release
// value, handling escaped characters in double-quoted values.
func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		if unquoted, err := strconv.Unquote(value); err == nil {
			return unquoted
		}

		return value[1 : len(value)-1]
	}

	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}

	return value
}
