package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RebaseLinks prefixes relative img[src] and a[href] values in an HTML
// fragment with base, a slash-separated path from the page to the directory
// the links were written against. An empty or "." base returns the fragment
// unchanged.
//
// Left alone: anchors, absolute paths, anything with a scheme or host, and
// every other element. A rebased link that climbs above base is still written;
// the index page may legitimately point outside its own directory.
func RebaseLinks(fragment, base string) (string, error) {
	base = strings.TrimSuffix(base, "/")
	if base == "" || base == "." {
		return fragment, nil
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	for _, n := range nodes {
		rebaseNode(n, base)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rebaseNode(n *html.Node, base string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rebaseAttr(n, "src", base)
		case atom.A:
			rebaseAttr(n, "href", base)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rebaseNode(c, base)
	}
}

func rebaseAttr(n *html.Node, key, base string) {
	for i, attr := range n.Attr {
		if attr.Key == key && isRelativeRef(attr.Val) {
			n.Attr[i].Val = path.Join(base, attr.Val)
		}
	}
}

// isRelativeRef reports whether ref is a document-relative path.
func isRelativeRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "/") {
		return false
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
