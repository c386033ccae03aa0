package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteAssetURLs prefixes relative media URLs in a rendered post with
// baseURL, so an image written as ![](img/cat.png) next to the markdown file
// resolves once the page is served from a different route.
// If baseURL is empty, returns the HTML unchanged.
//
// Rewrites img, video, audio and source src attributes. Links (a[href]) are
// left alone: relative links usually point at sibling routes, not assets.
// Paths that climb above the post directory are left untouched.
func RewriteAssetURLs(htmlContent, baseURL string) (string, error) {
	if baseURL == "" {
		return htmlContent, nil
	}

	root, err := parseFragment(htmlContent)
	if err != nil {
		return "", err
	}

	prefix := strings.TrimSuffix(baseURL, "/") + "/"
	rewriteNode(root, prefix)

	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// parseFragment parses HTML in a body context and hangs the resulting nodes
// under a single container for uniform traversal.
func parseFragment(content string) (*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

func rewriteNode(n *html.Node, prefix string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img, atom.Video, atom.Audio, atom.Source:
			rewriteAttr(n, "src", prefix)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, prefix)
	}
}

func rewriteAttr(n *html.Node, attrName, prefix string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativeURL(attr.Val) {
			continue
		}

		cleaned := path.Clean(attr.Val)
		if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
			continue
		}
		n.Attr[i].Val = prefix + cleaned
	}
}

// isRelativeURL reports whether a URL is a bare relative reference.
func isRelativeURL(u string) bool {
	if u == "" || strings.HasPrefix(u, "#") || strings.HasPrefix(u, "/") {
		return false
	}
	// Anything with a scheme (http:, data:, mailto:, ...) before the first
	// path separator is absolute.
	if i := strings.IndexByte(u, ':'); i >= 0 {
		if j := strings.IndexByte(u, '/'); j < 0 || i < j {
			return false
		}
	}
	return true
}
