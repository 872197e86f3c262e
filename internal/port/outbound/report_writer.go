package outbound

import (
	"io"
	"pairingcheck/internal/application/dto"
)

// ReportWriter renders a check summary. Success output goes to out,
// diagnostics and read failures go to errOut.
type ReportWriter interface {
	Write(out, errOut io.Writer, summary *dto.CheckSummary) error
}
