// Package gitchanges lists added and modified files in a git worktree so the
// checker can run as a pre-commit gate without an explicit file list.
package gitchanges

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"pairingcheck/internal/application/common/slogger"
	"pairingcheck/internal/domain/errors/domain"
	"pairingcheck/internal/port/outbound"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Options controls which worktree entries are returned.
type Options struct {
	IncludeUntracked bool
	// Extensions restricts results to these suffixes; empty means all files.
	Extensions []string
}

// Lister implements outbound.ChangedFileLister with go-git.
type Lister struct {
	opts Options
}

// New creates a Lister.
func New(opts Options) *Lister {
	return &Lister{opts: opts}
}

var _ outbound.ChangedFileLister = (*Lister)(nil)

// ListChangedFiles returns absolute paths of files that are added, modified,
// renamed or copied in either the index or the worktree, sorted by path.
// Deleted files are skipped since there is nothing left to scan.
func (l *Lister) ListChangedFiles(ctx context.Context, repoPath string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotGitWorktree, repoPath)
		}
		return nil, fmt.Errorf("open repository %s: %w", repoPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, fmt.Errorf("%w: %s is a bare repository", domain.ErrNotGitWorktree, repoPath)
		}
		return nil, fmt.Errorf("open worktree %s: %w", repoPath, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("worktree status %s: %w", repoPath, err)
	}

	root := worktree.Filesystem.Root()
	var paths []string
	for name, fileStatus := range status {
		if !l.wanted(fileStatus) || !l.matchesExtension(name) {
			continue
		}
		paths = append(paths, filepath.Join(root, filepath.FromSlash(name)))
	}
	sort.Strings(paths)

	slogger.Debug(ctx, "listed changed files", slogger.Fields3(
		"repository", root,
		"changed_entries", len(status),
		"selected", len(paths),
	))

	return paths, nil
}

func (l *Lister) wanted(fs *git.FileStatus) bool {
	if fs.Worktree == git.Deleted || fs.Staging == git.Deleted {
		return false
	}
	if fs.Worktree == git.Untracked {
		return l.opts.IncludeUntracked
	}
	return isChange(fs.Staging) || isChange(fs.Worktree)
}

func isChange(code git.StatusCode) bool {
	switch code {
	case git.Added, git.Modified, git.Renamed, git.Copied:
		return true
	default:
		return false
	}
}

func (l *Lister) matchesExtension(name string) bool {
	if len(l.opts.Extensions) == 0 {
		return true
	}
	for _, ext := range l.opts.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
