// Package probe gathers host operating system facts into a Report.
package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/curioso-agent/curioso/lib/libc"
	"github.com/curioso-agent/curioso/lib/osrelease"
	"github.com/curioso-agent/curioso/lib/pkgmgr"
	"github.com/curioso-agent/curioso/probestate"
)

// Version is the current version of the curioso tool.
const Version = "1.0.0"

// Unknown is the sentinel recorded for any fact that cannot be determined.
// Required report fields always carry either a concrete value or this
// sentinel, never an empty string.
const Unknown = "unknown"

// supportedOS is the only OS family for which the deep Linux-specific
// sections (distro, package manager, libc) are populated.
const supportedOS = "linux"

// Report is the structured record of OS facts produced by a single probe.
// It is built fresh on each Probe call and immutable once returned. Fields
// marshal in a fixed order so serialized reports are diffable.
type Report struct {
	OS             string               `json:"os"`              // OS is the operating system family (e.g. "linux").
	Version        string               `json:"version"`         // Version is the platform version (e.g. "24.04").
	Kernel         string               `json:"kernel"`          // Kernel is the kernel release string.
	Arch           string               `json:"arch"`            // Arch is the machine architecture (e.g. "x86_64").
	Hostname       string               `json:"hostname"`        // Hostname is the host's name.
	Platform       string               `json:"platform"`        // Platform is the distribution or product name (e.g. "ubuntu").
	BootTime       uint64               `json:"boot_time"`       // BootTime is the host boot time as a Unix timestamp. Stable across probes, unlike uptime.
	Supported      bool                 `json:"supported"`       // Supported reports whether the deep Linux sections are populated.
	Sandbox        Sandbox              `json:"sandbox"`         // Sandbox reports snap/flatpak confinement.
	Distro         *osrelease.OSRelease `json:"distro"`          // Distro is the parsed os-release data; null when unavailable.
	PackageManager *pkgmgr.Selection    `json:"package_manager"` // PackageManager lists detected package managers; null when unsupported.
	Libc           *libc.Info           `json:"libc"`            // Libc describes the detected C library; null when unsupported.
	LddEquivalent  *libc.LddEquivalent  `json:"ldd_equivalent"`  // LddEquivalent recommends a dependency-listing command; null when unsupported.
}

// Probe reads the host's OS facts and assembles them into a Report. A fact
// that cannot be determined is recorded with the Unknown sentinel (or a null
// section); only total failure of the host probing facility returns an error.
func Probe(ctx context.Context) (*Report, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("probing host facts: %w", err)
	}

	report := &Report{
		OS:            orUnknown(info.OS),
		Version:       orUnknown(info.PlatformVersion),
		Kernel:        orUnknown(info.KernelVersion),
		Arch:          orUnknown(info.KernelArch),
		Hostname:      orUnknown(info.Hostname),
		Platform:      orUnknown(info.Platform),
		BootTime:      info.BootTime,
		Supported:     info.OS == supportedOS,
		Sandbox:       DetectSandbox(),
	}

	if !report.Supported {
		probestate.Logger.Debug("Unsupported OS, skipping deep probes", "os", report.OS)

		return report, nil
	}

	distro, err := osrelease.Discover()
	switch {
	case errors.Is(err, osrelease.ErrNotFound):
		probestate.Logger.Debug("No os-release file found")
	case err != nil:
		probestate.Logger.Warn("Failed to read os-release data", "error", err)
	default:
		report.Distro = distro
	}

	report.PackageManager = pkgmgr.Discover()

	machine := report.Arch
	if machine == Unknown {
		machine = ""
	}

	report.Libc = libc.Detect(ctx, machine)
	report.LddEquivalent = libc.Equivalent(report.Libc.Family, report.Libc.SelectedLinker)

	return report, nil
}

// orUnknown substitutes the sentinel for facts the platform did not supply.
func orUnknown(value string) string {
	if value == "" {
		return Unknown
	}

	return value
}
