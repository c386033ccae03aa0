// Package frontmatter separates the metadata block at the top of a post from
// its markdown body.
//
// Two block styles are recognized:
//
//	---            +++
//	title: Hello   title = "Hello"
//	---            +++
//
// The first is YAML, the second TOML. A file without a block is all body.
// A file whose first non-blank line opens a block that is never closed is
// malformed.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"

	"github.com/alnah/go-blogposts/internal/yamlutil"
)

// ErrMalformed indicates the front-matter block could not be decoded.
var ErrMalformed = errors.New("malformed front-matter")

var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yamlutil.UnmarshalOptional),
	frontmatter.NewFormat("+++", "+++", unmarshalTOML),
}

func unmarshalTOML(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return toml.Unmarshal(data, v)
}

// Split returns the decoded front-matter keys and the remaining body.
// The returned map is never nil.
func Split(source []byte) (map[string]any, []byte, error) {
	source = normalizeLineEndings(source)
	if err := checkClosed(source); err != nil {
		return nil, nil, err
	}

	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, formats...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, body, nil
}

// checkClosed fails when the first non-blank line is an opening delimiter
// with no matching closing line after it.
func checkClosed(source []byte) error {
	lines := bytes.Split(source, []byte("\n"))
	for i, line := range lines {
		open := string(bytes.TrimSpace(line))
		if open == "" {
			continue
		}
		for _, f := range formats {
			if f.Start != open {
				continue
			}
			for _, rest := range lines[i+1:] {
				if string(bytes.TrimSpace(rest)) == f.End {
					return nil
				}
			}
			return fmt.Errorf("%w: %q block is never closed", ErrMalformed, open)
		}
		return nil
	}
	return nil
}

func normalizeLineEndings(b []byte) []byte {
	if !bytes.ContainsRune(b, '\r') {
		return b
	}
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
}
