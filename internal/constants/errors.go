package constants

import "errors"

// Configuration errors.
var (
	ErrNoInstanceConfigured = errors.New("no instance configured, use --instance or 'zesty config set instance <ZUID>'")
	ErrNotAuthenticated     = errors.New("not authenticated, use 'zesty login' first")
	ErrUnknownConfigKey     = errors.New("unknown configuration key")
	ErrTokenCannotBeSet     = errors.New("the token cannot be set with 'config set', use 'zesty login'")
)

// Input errors.
var (
	ErrEmptyToken              = errors.New("token must not be empty")
	ErrInvalidVersion          = errors.New("version must be a positive integer")
	ErrDirectoryTraversal      = errors.New("path contains directory traversal sequences")
	ErrNotRegularFile          = errors.New("path is not a regular file")
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)
