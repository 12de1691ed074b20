// Package probestate provides common state and logging shared across curioso.
package probestate

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// State represents the resolved runtime settings of the prober.
var State = probeState{} //nolint:gochecknoglobals // Global probe state

// probeState holds the configuration a single probe run operates under. All
// fields are set once during startup, before the probe begins; no
// synchronization is needed.
type probeState struct {
	Debug          bool          // Debug specifies whether the tool is running in debug mode.
	ExtraDebugging bool          // ExtraDebugging enables per-fact trace logging during the probe.
	CompactOutput  bool          // CompactOutput emits the report as a single JSON line instead of indented JSON.
	ProbeTimeout   time.Duration // ProbeTimeout bounds subprocess-backed detection steps (linker version checks).
}

// Logger is a shared logging instance writing to stderr so that stdout stays
// reserved for the JSON report.
var Logger = log.NewWithOptions(os.Stderr, log.Options{ //nolint:gochecknoglobals // Global logger instance
	Level:           log.InfoLevel,
	ReportTimestamp: true,
})

// ErrorLogger is a logger instance for logging critical errors with detailed error information.
var ErrorLogger = Logger.With() //nolint:gochecknoglobals // Global error logger instance
