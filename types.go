package blogposts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Front-matter keys promoted to Metadata fields.
const (
	KeyTitle     = "title"
	KeyDate      = "date"
	KeyThumbnail = "thumbnail"
)

// Keys injected by the loader on top of front-matter.
const (
	KeyID      = "id"
	KeyContent = "content"
)

// Metadata describes one post for listing pages.
type Metadata struct {
	ID        string         // file name minus ".md"
	Title     string         // front-matter "title", empty if absent or not a scalar
	Date      string         // front-matter "date", as written
	Thumbnail string         // front-matter "thumbnail"
	Fields    map[string]any // every front-matter key, verbatim
}

// newMetadata promotes the known keys of fields. fields is kept, not copied.
func newMetadata(id string, fields map[string]any) Metadata {
	if fields == nil {
		fields = map[string]any{}
	}
	return Metadata{
		ID:        id,
		Title:     scalarString(fields[KeyTitle]),
		Date:      scalarString(fields[KeyDate]),
		Thumbnail: scalarString(fields[KeyThumbnail]),
		Fields:    fields,
	}
}

// Map returns the flat record: every front-matter key plus "id".
// An "id" key in front-matter is overridden by the file-derived id.
func (m Metadata) Map() map[string]any {
	out := make(map[string]any, len(m.Fields)+1)
	for k, v := range m.Fields {
		out[k] = v
	}
	out[KeyID] = m.ID
	return out
}

// MarshalJSON encodes the flat record returned by Map.
func (m Metadata) MarshalJSON() ([]byte, error) {
	return marshalRecord(m.Map())
}

// MarshalYAML encodes the flat record returned by Map.
func (m Metadata) MarshalYAML() (any, error) {
	return m.Map(), nil
}

// DisplayTitle returns Title, or the id title-cased with dashes and
// underscores read as spaces: "hello-world" becomes "Hello World".
func (m Metadata) DisplayTitle() string {
	if strings.TrimSpace(m.Title) != "" {
		return m.Title
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(m.ID)
	return cases.Title(language.English).String(strings.Join(strings.Fields(words), " "))
}

// Post is a single post with its body rendered to HTML.
type Post struct {
	Metadata
	Content string // HTML fragment
}

// Map returns the flat record of the metadata plus "content".
func (p Post) Map() map[string]any {
	out := p.Metadata.Map()
	out[KeyContent] = p.Content
	return out
}

// MarshalJSON encodes the flat record returned by Map.
func (p Post) MarshalJSON() ([]byte, error) {
	return marshalRecord(p.Map())
}

// marshalRecord leaves HTML unescaped so an encoder configured with
// SetEscapeHTML(false) prints rendered content as is.
func marshalRecord(record map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalYAML encodes the flat record returned by Map.
func (p Post) MarshalYAML() (any, error) {
	return p.Map(), nil
}

// PathParams holds the route parameters of one post page.
type PathParams struct {
	ID string `json:"id" yaml:"id"`
}

// PathDescriptor is the shape a static-path generator expects per route.
type PathDescriptor struct {
	Params PathParams `json:"params" yaml:"params"`
}

// scalarString renders a front-matter scalar. Maps and slices yield "".
func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return formatTime(val)
	case *time.Time:
		if val == nil {
			return ""
		}
		return formatTime(*val)
	case map[string]any, []any:
		return ""
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// formatTime keeps date-only values short.
func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

// MarkdownOptions tunes body rendering. The zero value renders GFM with
// highlighted code blocks.
type MarkdownOptions struct {
	HeadingIDs       bool // id attributes on headings
	HardWraps        bool // newlines become <br>
	DisableHighlight bool // leave fenced code as plain <pre><code>
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS reads posts from fsys instead of the OS directory.
// The dir passed to NewLoader is then only used in log and error messages.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithAssetBaseURL prefixes relative media URLs in rendered posts.
func WithAssetBaseURL(baseURL string) Option {
	return func(l *Loader) {
		l.assetBaseURL = baseURL
	}
}

// WithMarkdownOptions sets markdown rendering options.
func WithMarkdownOptions(opts MarkdownOptions) Option {
	return func(l *Loader) {
		l.markdown = opts
	}
}
