package config

import (
	"fmt"
	"pairingcheck/internal/domain/errors/domain"
	"strings"

	"github.com/spf13/viper"
)

// DefaultExtensions are the file extensions picked up from a git worktree when
// none are configured.
var DefaultExtensions = []string{".c", ".h"} //nolint:gochecknoglobals // read-only default

// GitConfig holds settings for discovering changed files in a git worktree.
type GitConfig struct {
	Enabled          bool     `mapstructure:"enabled"           yaml:"enabled"`
	Repository       string   `mapstructure:"repository"        yaml:"repository"`
	IncludeUntracked bool     `mapstructure:"include_untracked" yaml:"include_untracked"`
	Extensions       []string `mapstructure:"extensions"        yaml:"extensions"`
}

func setGitDefaults(v *viper.Viper) {
	v.SetDefault("git.enabled", false)
	v.SetDefault("git.repository", ".")
	v.SetDefault("git.include_untracked", false)
	v.SetDefault("git.extensions", DefaultExtensions)
}

// Validate checks the git settings.
func (g GitConfig) Validate() error {
	for _, ext := range g.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: git.extensions entry %q must look like \".c\"", domain.ErrInvalidInput, ext)
		}
	}
	return nil
}
