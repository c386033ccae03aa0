package blogposts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-blogposts/internal/fileutil"
	"github.com/alnah/go-blogposts/internal/frontmatter"
	"github.com/alnah/go-blogposts/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ Logger                 = nopLogger{}
)

// Loader reads posts from a content directory.
// A Loader holds only configuration and is safe for concurrent use.
type Loader struct {
	dir           string
	fsys          fs.FS
	logger        Logger
	assetBaseURL  string
	markdown      MarkdownOptions
	htmlConverter pipeline.HTMLConverter
}

// NewLoader creates a Loader for the posts in dir.
// Returns ErrEmptyContentDir if dir is empty and no WithFS option is given.
// The directory is not touched until an operation runs.
func NewLoader(dir string, opts ...Option) (*Loader, error) {
	l := &Loader{
		dir:    dir,
		logger: nopLogger{},
	}

	for _, opt := range opts {
		opt(l)
	}

	if l.fsys == nil {
		if dir == "" {
			return nil, ErrEmptyContentDir
		}
		l.fsys = os.DirFS(dir)
	}

	// Tests may inject a converter before this point.
	if l.htmlConverter == nil {
		l.htmlConverter = pipeline.NewGoldmarkConverter(pipeline.Options{
			HeadingIDs:       l.markdown.HeadingIDs,
			HardWraps:        l.markdown.HardWraps,
			DisableHighlight: l.markdown.DisableHighlight,
		})
	}

	return l, nil
}

// Dir returns the content directory the loader was created with.
func (l *Loader) Dir() string {
	return l.dir
}

// ListPostsMetadata returns one Metadata per post, in directory order.
// Bodies are read but discarded.
func (l *Loader) ListPostsMetadata(ctx context.Context) ([]Metadata, error) {
	ids, err := l.postIDs(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]Metadata, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		meta, _, err := l.readPost(id)
		if err != nil {
			return nil, err
		}
		posts = append(posts, meta)
	}

	l.logger.Debug("listed posts metadata", "dir", l.dir, "count", len(posts))
	return posts, nil
}

// ListPostIDs returns one route descriptor per post, in directory order.
// File contents are not read.
func (l *Loader) ListPostIDs(ctx context.Context) ([]PathDescriptor, error) {
	ids, err := l.postIDs(ctx)
	if err != nil {
		return nil, err
	}

	paths := make([]PathDescriptor, len(ids))
	for i, id := range ids {
		paths[i] = PathDescriptor{Params: PathParams{ID: id}}
	}

	l.logger.Debug("listed post ids", "dir", l.dir, "count", len(paths))
	return paths, nil
}

// LoadPost reads the post named id and renders its body to HTML.
// Invalid ids fail with ErrInvalidID before any file access. A missing post
// fails with an error matching fs.ErrNotExist.
func (l *Loader) LoadPost(ctx context.Context, id string) (*Post, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta, body, err := l.readPost(id)
	if err != nil {
		return nil, err
	}

	content, err := l.render(ctx, string(body))
	if err != nil {
		return nil, fmt.Errorf("rendering post %q: %w", id, err)
	}

	l.logger.Debug("loaded post", "id", id, "bytes", len(content))
	return &Post{Metadata: meta, Content: content}, nil
}

// postIDs enumerates the regular ".md" files at the root of the content
// directory.
func (l *Loader) postIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadContentDir, l.dir, err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		id, ok := fileutil.TrimMarkdownExt(entry.Name())
		if !ok || id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// readPost reads <id>.md and splits its front-matter from the body.
func (l *Loader) readPost(id string) (Metadata, []byte, error) {
	name := id + fileutil.MarkdownExt

	source, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Metadata{}, nil, fmt.Errorf("%w %q: %w", ErrReadPost, name, err)
	}

	fields, body, err := frontmatter.Split(source)
	if err != nil {
		l.logger.Debug("front-matter rejected", "file", name, "error", err)
		return Metadata{}, nil, fmt.Errorf("%w in %q: %w", ErrFrontMatter, name, err)
	}

	return newMetadata(id, fields), body, nil
}

// render runs the markdown pipeline on a post body.
// Line endings are already normalized by the front-matter splitter.
func (l *Loader) render(ctx context.Context, body string) (string, error) {
	html, err := l.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		if errors.Is(err, ErrHTMLConversion) || ctx.Err() != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrHTMLConversion, err)
	}

	if l.assetBaseURL != "" {
		html, err = pipeline.RewriteAssetURLs(html, l.assetBaseURL)
		if err != nil {
			return "", fmt.Errorf("rewriting asset URLs: %w", err)
		}
	}

	return html, nil
}
