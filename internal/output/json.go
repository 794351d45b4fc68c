package output

import (
	"encoding/json"
	"io"

	"github.com/Srialok01/healthcheck/internal/probe"
)

// report is the machine-readable shape emitted when a summary is requested
// alongside the per-site results.
type report struct {
	Results []probe.Result `json:"results"`
	Summary *probe.Summary `json:"summary"`
}

// WriteJSON emits results as indented JSON. With a nil summary the output is
// a bare array of results; otherwise results and summary are wrapped in a
// single object.
func WriteJSON(w io.Writer, results []probe.Result, summary *probe.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if summary == nil {
		return enc.Encode(results)
	}
	return enc.Encode(report{Results: results, Summary: summary})
}
