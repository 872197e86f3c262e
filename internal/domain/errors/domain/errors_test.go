package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors_Messages(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectedMsg string
	}{
		{name: "invalid pair config", err: ErrInvalidPairConfig, expectedMsg: "pair configuration is invalid"},
		{name: "empty pair side", err: ErrEmptyPairSide, expectedMsg: "pair side has no aliases"},
		{name: "pair table missing", err: ErrPairTableNotFound, expectedMsg: "pair table file not found"},
		{name: "unreadable file", err: ErrFileUnreadable, expectedMsg: "file could not be read"},
		{name: "not a worktree", err: ErrNotGitWorktree, expectedMsg: "path is not inside a git worktree"},
		{name: "invalid input", err: ErrInvalidInput, expectedMsg: "invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
		})
	}
}

func TestSentinelErrors_SurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to open file %s: %w", "scene.c", ErrFileUnreadable)

	assert.ErrorIs(t, wrapped, ErrFileUnreadable)
	assert.False(t, errors.Is(wrapped, ErrInvalidPairConfig))
	assert.Contains(t, wrapped.Error(), "scene.c")
}
