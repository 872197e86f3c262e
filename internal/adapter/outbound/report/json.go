package report

import (
	"encoding/json"
	"fmt"
	"io"
	"pairingcheck/internal/application/dto"
	"pairingcheck/internal/port/outbound"
)

// JSONWriter renders the whole summary as one JSON document on out.
type JSONWriter struct{}

// NewJSONWriter creates a JSONWriter.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

var _ outbound.ReportWriter = (*JSONWriter)(nil)

// Write implements outbound.ReportWriter. errOut is unused.
func (w *JSONWriter) Write(out, _ io.Writer, summary *dto.CheckSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
