package report

import (
	"fmt"
	"pairingcheck/internal/config"
	"pairingcheck/internal/domain/errors/domain"
	"pairingcheck/internal/port/outbound"
)

// NewWriter returns the writer for a configured format.
func NewWriter(format string) (outbound.ReportWriter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextWriter(), nil
	case config.FormatJSON:
		return NewJSONWriter(), nil
	default:
		return nil, fmt.Errorf("%w: unknown report format %q", domain.ErrInvalidInput, format)
	}
}
