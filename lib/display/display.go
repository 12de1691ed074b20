// Package display provides logging output for notable curioso events.
package display

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/curioso-agent/curioso/lib/probe"
	"github.com/curioso-agent/curioso/probestate"
)

// Startup logs an informational message indicating the start of a probe run.
func Startup() {
	probestate.Logger.Info("Starting curioso probe", "version", probe.Version)
}

// Completed logs a summary of the finished probe.
func Completed(report *probe.Report) {
	probestate.Logger.Info("Probe completed",
		"os", report.OS,
		"platform", report.Platform,
		"arch", report.Arch,
		"hostname", report.Hostname,
		"up_since", upSince(report.BootTime),
	)

	if report.Libc != nil {
		probestate.Logger.Debug("Libc detection", "family", report.Libc.Family, "detector", report.Libc.Detector)
	}
}

// upSince renders the boot timestamp as a relative human-readable time.
func upSince(bootTime uint64) string {
	if bootTime == 0 {
		return probe.Unknown
	}

	return humanize.Time(time.Unix(int64(bootTime), 0))
}
