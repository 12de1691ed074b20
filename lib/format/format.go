// Package format serializes probe reports to JSON.
package format

import (
	"encoding/json"
	"fmt"

	"github.com/curioso-agent/curioso/lib/probe"
)

// indent matches the two-space indentation used across the project's JSON
// output.
const indent = "  "

// Serialize renders a report as a single-line JSON object. Key order follows
// the Report struct, so the same report always yields the same text.
func Serialize(report *probe.Report) (string, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("serializing report: %w", err)
	}

	return string(data), nil
}

// SerializePretty renders a report as indented JSON, still one object and
// still deterministic.
func SerializePretty(report *probe.Report) (string, error) {
	data, err := json.MarshalIndent(report, "", indent)
	if err != nil {
		return "", fmt.Errorf("serializing report: %w", err)
	}

	return string(data), nil
}
