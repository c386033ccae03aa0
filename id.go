package blogposts

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"github.com/alnah/go-blogposts/internal/fileutil"
)

// ValidateID reports whether id can name a post file. Ids must be non-empty
// and must not contain "/", "\" or NUL, nor be "." or "..".
// Failures match ErrInvalidID and carry the go-errors validation category.
func ValidateID(id string) error {
	reason := fileutil.ValidateBaseName(id)
	if reason == nil {
		return nil
	}
	wrapped := goerrors.Wrap(reason, goerrors.CategoryValidation, "post id validation failed").
		WithTextCode(idValidationCode)
	return fmt.Errorf("%w %q: %w", ErrInvalidID, id, wrapped)
}
