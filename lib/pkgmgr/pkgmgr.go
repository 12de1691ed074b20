// Package pkgmgr discovers which system package managers are installed on the
// host.
package pkgmgr

import (
	"os/exec"
	"path/filepath"

	"github.com/duke-git/lancet/v2/slice"
)

// candidateBinaries lists the package manager binaries probed for, covering
// the mainstream Linux distribution families.
var candidateBinaries = []string{ //nolint:gochecknoglobals // Fixed candidate list
	"apt",
	"apt-get",
	"dnf",
	"yum",
	"zypper",
	"pacman",
	"apk",
	"xbps-install",
	"emerge",
	"nix",
	"nix-env",
	"swupd",
	"eopkg",
	"urpmi",
}

// Selection reports the package managers found on the host. Both slices are
// empty, never nil, when no manager is installed.
type Selection struct {
	Packages  []string `json:"packages"`  // Packages lists the candidate binary names found on PATH.
	Available []string `json:"available"` // Available lists the symlink-resolved paths of those binaries.
}

// Discover probes PATH for known package manager binaries and resolves each
// hit to its real binary path. A host with no package manager yields an empty
// Selection rather than an error.
func Discover() *Selection {
	return discoverFrom(candidateBinaries)
}

func discoverFrom(candidates []string) *Selection {
	found := []string{}
	paths := []string{}

	for _, name := range candidates {
		binPath, err := exec.LookPath(name)
		if err != nil {
			continue
		}

		found = append(found, name)
		paths = append(paths, binPath)
	}

	resolved := slice.Map(paths, func(_ int, p string) string {
		return resolvePath(p)
	})

	return &Selection{Packages: found, Available: resolved}
}

// resolvePath follows symlinks so that wrappers (e.g. /usr/bin/yum pointing
// at dnf) report the real binary.
func resolvePath(binPath string) string {
	resolved, err := filepath.EvalSymlinks(binPath)
	if err != nil {
		return binPath
	}

	return resolved
}
