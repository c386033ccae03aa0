// Package pipeline implements the post body rendering pipeline.
//
// A post body goes through two stages:
//   - Markdown to HTML conversion via Goldmark (GFM, footnotes, ==mark==, chroma)
//   - Optional rewriting of relative media URLs against a public base URL
//
// The output is an HTML fragment. Wrapping it in a page layout is left to
// whatever presents the post.
package pipeline
