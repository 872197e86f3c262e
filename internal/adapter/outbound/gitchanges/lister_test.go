package gitchanges

import (
	"context"
	"os"
	"path/filepath"
	"pairingcheck/internal/domain/errors/domain"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo creates a repository with one committed file, then leaves a
// modified file, a staged new file, an untracked file and a staged text file.
func newTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)

	write := func(name, content string) {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}

	write("src/committed.c", "malloc(1);\nfree(p);\n")
	write("src/untouched.c", "int x;\n")
	write("src/removed.c", "free(p);\n")
	_, err = worktree.Add("src")
	require.NoError(t, err)
	_, err = worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	write("src/committed.c", "malloc(1);\n")
	write("src/staged.c", "free(p);\n")
	write("src/untracked.c", "malloc(2);\n")
	write("notes.txt", "malloc(3)\n")
	_, err = worktree.Add("src/staged.c")
	require.NoError(t, err)
	_, err = worktree.Add("notes.txt")
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, "src/removed.c")))

	return dir
}

func baseNames(paths []string) []string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	return names
}

func TestLister_ListChangedFiles(t *testing.T) {
	dir := newTestRepo(t)

	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "c files only",
			opts: Options{Extensions: []string{".c", ".h"}},
			want: []string{"committed.c", "staged.c"},
		},
		{
			name: "including untracked",
			opts: Options{IncludeUntracked: true, Extensions: []string{".c"}},
			want: []string{"committed.c", "staged.c", "untracked.c"},
		},
		{
			name: "no extension filter",
			opts: Options{},
			want: []string{"notes.txt", "committed.c", "staged.c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paths, err := New(tt.opts).ListChangedFiles(context.Background(), dir)
			require.NoError(t, err)

			assert.Equal(t, tt.want, baseNames(paths))
			for _, p := range paths {
				assert.True(t, filepath.IsAbs(p), "expected absolute path, got %s", p)
				assert.FileExists(t, p)
			}
		})
	}
}

func TestLister_ListChangedFiles_FromSubdirectory(t *testing.T) {
	dir := newTestRepo(t)

	paths, err := New(Options{Extensions: []string{".c"}}).ListChangedFiles(context.Background(), filepath.Join(dir, "src"))

	require.NoError(t, err)
	assert.Equal(t, []string{"committed.c", "staged.c"}, baseNames(paths))
}

func TestLister_ListChangedFiles_NotARepository(t *testing.T) {
	_, err := New(Options{}).ListChangedFiles(context.Background(), t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotGitWorktree)
}

func TestLister_ListChangedFiles_CleanWorktree(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.c"), []byte("malloc(1);free(p);"), 0o600))
	_, err = worktree.Add("a.c")
	require.NoError(t, err)
	_, err = worktree.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	paths, err := New(Options{}).ListChangedFiles(context.Background(), dir)

	require.NoError(t, err)
	assert.Empty(t, paths)
}
