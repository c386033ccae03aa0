package main

import (
	"errors"
	"io/fs"

	blogposts "github.com/alnah/go-blogposts"
	"github.com/alnah/go-blogposts/internal/config"
)

// Exit codes for the blogposts CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Command completed
	ExitGeneral = 1 // General/unexpected error, including interruption
	ExitUsage   = 2 // Invalid flags, config, or post id
	ExitIO      = 3 // Directory or post not found, permission denied
	ExitParse   = 4 // Malformed front-matter or render failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Parse/render errors (exit 4)
	if errors.Is(err, blogposts.ErrFrontMatter) ||
		errors.Is(err, blogposts.ErrHTMLConversion) {
		return ExitParse
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, blogposts.ErrInvalidID) ||
		errors.Is(err, blogposts.ErrEmptyContentDir) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, blogposts.ErrReadPost) {
		return ExitIO
	}

	return ExitGeneral
}
