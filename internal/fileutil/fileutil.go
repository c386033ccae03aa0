// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"os"
	"strings"
)

// MarkdownExt is the only extension recognized as a post.
const MarkdownExt = ".md"

// Sentinel errors for file name validation.
var (
	ErrNameEmpty     = errors.New("name cannot be empty")
	ErrNameTraversal = errors.New("name contains path separator, null byte or parent reference")
)

// ValidateBaseName checks that name can be joined onto a directory without
// escaping it: no separators of either platform, no NUL, not "." or "..".
// With separators ruled out, ".." can only appear as the whole name.
func ValidateBaseName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return ErrNameTraversal
	}
	if name == "." || name == ".." {
		return ErrNameTraversal
	}
	return nil
}

// TrimMarkdownExt strips exactly one trailing ".md" from a file name.
// The boolean reports whether the suffix was present.
func TrimMarkdownExt(name string) (string, bool) {
	if !strings.HasSuffix(name, MarkdownExt) {
		return name, false
	}
	return strings.TrimSuffix(name, MarkdownExt), true
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "blogposts" -> false (name)
//   - "./blogposts.yaml" -> true (relative path)
//   - "/etc/blogposts.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
