package blogposts

import (
	"errors"

	"github.com/alnah/go-blogposts/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyContentDir = errors.New("content directory cannot be empty")
	ErrInvalidID       = errors.New("invalid post id")
	ErrReadContentDir  = errors.New("failed to read content directory")
	ErrReadPost        = errors.New("failed to read post")
	ErrFrontMatter     = errors.New("failed to parse front-matter")

	// ErrHTMLConversion is shared with the rendering pipeline so either
	// sentinel matches a render failure.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)

// idValidationCode tags invalid ids in go-errors metadata.
const idValidationCode = "POST_ID_INVALID"
