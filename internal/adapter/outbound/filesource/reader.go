// Package filesource reads source files from the local file system.
package filesource

import (
	"context"
	"fmt"
	"os"
	"pairingcheck/internal/application/common/slogger"
	"pairingcheck/internal/domain/errors/domain"
	"pairingcheck/internal/port/outbound"
)

// Reader implements outbound.SourceReader on top of os.ReadFile.
// Files are read once and buffered whole; there is no retry.
type Reader struct{}

// New creates a file system reader.
func New() *Reader {
	return &Reader{}
}

var _ outbound.SourceReader = (*Reader)(nil)

// ReadSource returns the full text of path.
func (r *Reader) ReadSource(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", domain.ErrFileUnreadable, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slogger.Debug(ctx, "source file unreadable", slogger.Fields2("file_path", path, "error", err.Error()))
		return "", fmt.Errorf("%w: %w", domain.ErrFileUnreadable, err)
	}

	slogger.Debug(ctx, "source file read", slogger.Fields2("file_path", path, "bytes", len(data)))
	return string(data), nil
}
