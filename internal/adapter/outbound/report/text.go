// Package report renders check summaries for the console.
package report

import (
	"fmt"
	"io"
	"pairingcheck/internal/application/dto"
	"pairingcheck/internal/port/outbound"
	"strings"
)

// SuccessMessage is printed when every file is balanced.
const SuccessMessage = "Good to go!"

const (
	pairIndent     = "    "
	locationIndent = "        "
	sourceIndent   = "            "
)

// TextWriter renders the human-readable report.
type TextWriter struct{}

// NewTextWriter creates a TextWriter.
func NewTextWriter() *TextWriter {
	return &TextWriter{}
}

var _ outbound.ReportWriter = (*TextWriter)(nil)

// Write prints one block per failing file to errOut, or the success message to
// out when the run passed.
func (w *TextWriter) Write(out, errOut io.Writer, summary *dto.CheckSummary) error {
	for _, outcome := range summary.Failed() {
		if _, err := io.WriteString(errOut, FormatOutcome(outcome)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	if summary.Passed {
		if _, err := fmt.Fprintln(out, SuccessMessage); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// FormatOutcome renders a failed outcome. Passing outcomes render as "".
func FormatOutcome(outcome dto.FileOutcome) string {
	if outcome.Passed {
		return ""
	}

	if outcome.Err != nil {
		return fmt.Sprintf("failed to open file %s: %s\n", outcome.Path, outcome.Err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "file %s has mismatched pairings\n", outcome.Path)
	for _, diag := range outcome.Diagnostics {
		if summary := diag.OccurrenceSummary(); summary != "" {
			fmt.Fprintf(&b, "%spairings %s\n", pairIndent, summary)
		} else {
			fmt.Fprintf(&b, "%spairing %s\n", pairIndent, diag.PairLabel)
		}
		for _, loc := range diag.Locations {
			fmt.Fprintf(&b, "%s%s %s:%d\n", locationIndent, loc.Alias, outcome.Path, loc.Line)
			fmt.Fprintf(&b, "%s%s\n", sourceIndent, loc.SourceLine)
		}
	}
	return b.String()
}
