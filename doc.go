// Package blogposts turns a directory of markdown posts into page data for a
// static blog.
//
// # Quick Start
//
// Point a loader at the content directory and ask for what a page needs:
//
//	loader, err := blogposts.NewLoader("posts")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	posts, err := loader.ListPostsMetadata(ctx) // listing page
//	ids, err := loader.ListPostIDs(ctx)         // one route per post
//	post, err := loader.LoadPost(ctx, "hello-world")
//
// # Content Layout
//
// Each post is a file named <id>.md directly inside the content directory.
// The file starts with an optional front-matter block, YAML between "---"
// lines or TOML between "+++" lines, followed by the markdown body:
//
//	---
//	title: "Hello World"
//	date: "2024-01-01"
//	thumbnail: /img/1.png
//	---
//	# Hi
//
//	Welcome.
//
// Front-matter keys are open-ended. Title, Date and Thumbnail are promoted
// to struct fields; every key stays available in Metadata.Fields.
//
// # Rendering
//
// LoadPost renders the body to an HTML fragment with goldmark (GFM,
// footnotes, chroma highlighting with CSS classes). Raw HTML embedded in a
// post is not passed through. ==text== becomes <mark>text</mark> outside code.
//
// # Ordering
//
// Listings follow fs.ReadDir order, which is lexical by file name. Use
// SortByDate for a newest-first blog index.
//
// # Errors
//
// Every operation rebuilds its result from the filesystem; nothing is cached.
// Errors wrap sentinels so callers can branch with errors.Is:
//
//	post, err := loader.LoadPost(ctx, id)
//	switch {
//	case errors.Is(err, blogposts.ErrInvalidID):
//	    // reject the request
//	case errors.Is(err, fs.ErrNotExist):
//	    // 404
//	}
package blogposts
