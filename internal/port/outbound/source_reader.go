package outbound

import "context"

// SourceReader provides the full text of a source file.
type SourceReader interface {
	// ReadSource returns the contents of path. Failures wrap
	// domain.ErrFileUnreadable.
	ReadSource(ctx context.Context, path string) (string, error)
}

// ChangedFileLister discovers files that changed in a version-controlled
// worktree, for use as a pre-commit gate.
type ChangedFileLister interface {
	// ListChangedFiles returns paths of added or modified files under the
	// worktree containing repoPath. Returned paths are usable with SourceReader.
	ListChangedFiles(ctx context.Context, repoPath string) ([]string, error)
}
