// Package domain provides domain-specific error definitions and utilities.
package domain

import "errors"

// Pair configuration errors.
var (
	ErrInvalidPairConfig = errors.New("pair configuration is invalid")
	ErrEmptyPairSide     = errors.New("pair side has no aliases")
	ErrPairTableNotFound = errors.New("pair table file not found")
)

// Source file errors.
var (
	ErrFileUnreadable = errors.New("file could not be read")
	ErrNotGitWorktree = errors.New("path is not inside a git worktree")
)

// ErrInvalidInput is returned for invalid user-supplied settings.
var ErrInvalidInput = errors.New("invalid input")
