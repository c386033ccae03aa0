package main

import (
	"errors"
	"io/fs"

	blogposts "github.com/alnah/go-blogposts"
	"github.com/alnah/go-blogposts/internal/config"
	"github.com/alnah/go-blogposts/internal/hints"
)

// hintedError carries a hint computed where more context was available.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

// withHint attaches hint to err. A nil err stays nil.
func withHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return &hintedError{err: err, hint: hint}
}

// contentDirHint attaches the missing-directory hint when err says the
// content directory does not exist.
func contentDirHint(err error, dir string) error {
	if errors.Is(err, blogposts.ErrReadContentDir) && errors.Is(err, fs.ErrNotExist) {
		return withHint(err, hints.ForContentDirNotFound(dir))
	}
	return err
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var h *hintedError
	if errors.As(err, &h) {
		return h.hint
	}

	switch {
	case errors.Is(err, blogposts.ErrInvalidID):
		return hints.ForInvalidID()
	case errors.Is(err, blogposts.ErrFrontMatter):
		return hints.ForFrontMatter()
	case errors.Is(err, blogposts.ErrReadPost) && errors.Is(err, fs.ErrNotExist):
		return hints.ForPostNotFound()
	case errors.Is(err, blogposts.ErrReadContentDir) && errors.Is(err, fs.ErrNotExist):
		return hints.ForContentDirNotFound("")
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	}
	return ""
}
