// Package libc identifies the C library family and version of the host by
// interrogating its dynamic linker.
package libc

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/curioso-agent/curioso/probestate"
)

// FamilyUnknown is the sentinel recorded when the libc family cannot be
// determined.
const FamilyUnknown = "unknown"

// Detector labels for the Info.Detector field, recording which method
// identified the libc.
const (
	detectorLinkerVersion = "ld--version"
	detectorLddMode       = "ldd-mode"
	detectorPathLdd       = "ldd--version"
	detectorNone          = "none"
)

// linkerGlobs lists where dynamic linkers live across glibc and musl layouts.
var linkerGlobs = []string{ //nolint:gochecknoglobals // Fixed search patterns
	"/lib*/ld-linux*.so*",
	"/lib/*/ld-linux*.so*",
	"/lib*/ld-*.so*",
	"/lib/*/ld-*.so*",
	"/lib*/ld-musl-*.so*",
	"/lib/*/ld-musl-*.so*",
}

var (
	glibcVersionRe = regexp.MustCompile(`(?i)(?:glibc|gnu c library|gnu libc)[^\d]*(\d+\.\d+(?:\.\d+)?)`)
	muslVersionRe  = regexp.MustCompile(`(?i)musl[^0-9]*([0-9]+\.[0-9]+(?:\.[0-9]+)?)`)
)

// Info describes the detected C library.
type Info struct {
	Family         string `json:"family"`          // Family is the libc family ("glibc", "musl" or the unknown sentinel).
	Version        string `json:"version"`         // Version is the detected libc version, empty when unavailable.
	SelectedLinker string `json:"selected_linker"` // SelectedLinker is the dynamic linker path used for detection.
	Detector       string `json:"detector"`        // Detector records which detection method produced this result.
}

// LddEquivalent describes how to list the dynamic dependencies of a binary on
// this host without relying on an ldd wrapper script being installed.
type LddEquivalent struct {
	Method      string   `json:"method"`       // Method names the recommended technique.
	CmdTemplate []string `json:"cmd_template"` // CmdTemplate is the command with a {target} placeholder.
	Executable  string   `json:"executable"`   // Executable is the binary to exec for argv0-based methods.
}

// Detect identifies the host libc. machine is the host machine architecture
// (e.g. "x86_64"), used to rank linker candidates; it may be empty.
// Subprocess failures degrade to the unknown sentinel; Detect itself never
// fails.
func Detect(ctx context.Context, machine string) *Info {
	linkers := findDynamicLinkers(machine)
	if len(linkers) == 0 {
		return detectFromPathLdd(ctx)
	}

	selected := linkers[0]
	if probestate.State.ExtraDebugging {
		probestate.Logger.Debug("Probing dynamic linker", "linker", selected, "candidates", len(linkers))
	}

	combined := runCombined(ctx, selected, nil, "--version")
	lowered := strings.ToLower(combined)

	if strings.Contains(lowered, "musl") {
		return &Info{
			Family:         "musl",
			Version:        muslVersion(combined),
			SelectedLinker: selected,
			Detector:       detectorLinkerVersion,
		}
	}

	if strings.Contains(lowered, "glibc") ||
		strings.Contains(lowered, "gnu c library") ||
		strings.Contains(filepath.Base(selected), "ld-linux") {
		return &Info{
			Family:         "glibc",
			Version:        glibcVersion(combined),
			SelectedLinker: selected,
			Detector:       detectorLinkerVersion,
		}
	}

	// Some linkers only reveal themselves when invoked as "ldd" via argv[0].
	combined = runCombined(ctx, selected, []string{"ldd", "--version"})
	if strings.Contains(strings.ToLower(combined), "musl") {
		return &Info{
			Family:         "musl",
			Version:        muslVersion(combined),
			SelectedLinker: selected,
			Detector:       detectorLddMode,
		}
	}

	info := detectFromPathLdd(ctx)
	info.SelectedLinker = selected

	return info
}

// detectFromPathLdd falls back to the ldd wrapper on PATH, the last resort
// when no linker answered directly.
func detectFromPathLdd(ctx context.Context) *Info {
	combined := runCombined(ctx, "ldd", nil, "--version")
	lowered := strings.ToLower(combined)

	switch {
	case strings.Contains(lowered, "musl"):
		return &Info{Family: "musl", Version: muslVersion(combined), Detector: detectorPathLdd}
	case strings.Contains(lowered, "glibc"), strings.Contains(lowered, "gnu libc"), strings.Contains(lowered, "gnu c library"):
		return &Info{Family: "glibc", Version: glibcVersion(combined), Detector: detectorPathLdd}
	default:
		return &Info{Family: FamilyUnknown, Detector: detectorNone}
	}
}

// Equivalent recommends an ldd-equivalent invocation for the detected libc.
// The {target} placeholder stands for the binary to inspect.
func Equivalent(family, linker string) *LddEquivalent {
	if linker == "" {
		return &LddEquivalent{Method: FamilyUnknown}
	}

	switch family {
	case "glibc":
		return &LddEquivalent{
			Method:      "glibc-ld--list",
			CmdTemplate: []string{linker, "--list", "{target}"},
		}
	case "musl":
		return &LddEquivalent{
			Method:      "musl-ld-argv0-ldd",
			CmdTemplate: []string{"ldd", "{target}"},
			Executable:  linker,
		}
	default:
		return &LddEquivalent{Method: FamilyUnknown}
	}
}

// findDynamicLinkers globs the standard linker locations and returns the
// executable hits, best candidate first.
func findDynamicLinkers(machine string) []string {
	seen := map[string]bool{}
	linkers := []string{}

	for _, pattern := range linkerGlobs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}

		for _, match := range matches {
			if seen[match] || !isExecutableFile(match) {
				continue
			}

			seen[match] = true
			linkers = append(linkers, match)
		}
	}

	return sortLinkers(linkers, machine)
}

// sortLinkers orders candidates so that linkers matching the host machine
// architecture come first, shorter paths breaking ties.
func sortLinkers(linkers []string, machine string) []string {
	sort.SliceStable(linkers, func(i, j int) bool {
		iMatches := machine != "" && strings.Contains(linkers[i], machine)
		jMatches := machine != "" && strings.Contains(linkers[j], machine)

		if iMatches != jMatches {
			return iMatches
		}

		return len(linkers[i]) < len(linkers[j])
	})

	return linkers
}

func isExecutableFile(path string) bool {
	stat, err := os.Stat(path)
	if err != nil || !stat.Mode().IsRegular() {
		return false
	}

	return stat.Mode().Perm()&0o111 != 0
}

// runCombined executes a command and returns its combined stdout and stderr.
// argv overrides the full argument vector including argv[0], which lets a
// dynamic linker be invoked under the name "ldd". Failures yield whatever
// output was produced; version banners often arrive on stderr with a nonzero
// exit status.
func runCombined(ctx context.Context, program string, argv []string, args ...string) string {
	cmd := exec.CommandContext(ctx, program, args...)
	if argv != nil {
		cmd.Args = argv
	}

	out, err := cmd.CombinedOutput()
	if err != nil && probestate.State.ExtraDebugging {
		probestate.Logger.Debug("Linker probe command failed", "program", program, "error", err)
	}

	return strings.TrimSpace(string(out))
}

func glibcVersion(output string) string {
	if m := glibcVersionRe.FindStringSubmatch(output); m != nil {
		return m[1]
	}

	return ""
}

func muslVersion(output string) string {
	if m := muslVersionRe.FindStringSubmatch(output); m != nil {
		return m[1]
	}

	return ""
}
