// Package inbound defines the inbound ports (interfaces) for the application layer.
// These ports represent the entry points into the application's core business logic.
package inbound

import (
	"context"
	"pairingcheck/internal/application/dto"
)

// PairingChecker checks source files for unbalanced paired calls.
type PairingChecker interface {
	// CheckFiles scans every path independently. Per-file failures are
	// reported inside the summary; the error is reserved for failures that
	// prevent producing a summary at all.
	CheckFiles(ctx context.Context, paths []string) (*dto.CheckSummary, error)
}
