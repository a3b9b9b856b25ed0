package readability

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Helpers over x/net/html trees. The html.Node model has no separate
// "tail" text: text before, between and after elements is stored as
// ordinary sibling text nodes, so detaching an element never loses the
// text that follows it.

// trim collapses runs of whitespace to single spaces and trims the ends.
func trim(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// textContent returns the concatenated text of all descendant text nodes.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// textLength returns the character count of the trimmed text content.
func textLength(n *html.Node) int {
	return utf8.RuneCountInString(trim(textContent(n)))
}

// leadingText returns the direct text the element starts with: the
// contiguous run of text nodes before its first non-text child.
func leadingText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil && c.Type == html.TextNode; c = c.NextSibling {
		b.WriteString(c.Data)
	}
	return b.String()
}

// leadingTextNodes returns the contiguous run of text nodes before the
// element's first non-text child.
func leadingTextNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil && c.Type == html.TextNode; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// tailTextNodes returns the contiguous run of text nodes immediately
// following n, i.e. the text between n and its next non-text sibling.
func tailTextNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.NextSibling; c != nil && c.Type == html.TextNode; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// findAll returns all descendant elements with the given tag name in
// document order. The result is a snapshot: callers may mutate the tree
// while iterating it.
func findAll(root *html.Node, name string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// tags returns descendant elements grouped by tag name: all elements of
// the first name in document order, then all of the second, and so on.
func tags(root *html.Node, names ...string) []*html.Node {
	var out []*html.Node
	for _, name := range names {
		out = append(out, findAll(root, name)...)
	}
	return out
}

// reverseTags is like tags but reverses the per-name document order, so
// deeper and later elements come first within each tag name.
func reverseTags(root *html.Node, names ...string) []*html.Node {
	var out []*html.Node
	for _, name := range names {
		found := findAll(root, name)
		for i := len(found) - 1; i >= 0; i-- {
			out = append(out, found[i])
		}
	}
	return out
}

// allElements returns every descendant element of root in document order.
func allElements(root *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// childElements returns the element children of n.
func childElements(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// excise removes n and its subtree from the tree. Removing a node that
// is already part of a detached subtree is a no-op at the tree root but
// still unlinks n from its parent.
func excise(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// nextElementSibling returns the element sibling following n, if any.
func nextElementSibling(n *html.Node) *html.Node {
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// prevElementSibling returns the element sibling preceding n, if any.
func prevElementSibling(n *html.Node) *html.Node {
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// getAttr returns the value of the named attribute and whether it exists.
func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// setAttr sets or replaces the named attribute.
func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// newElement creates a detached element node with the given tag name.
func newElement(name string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(name)),
		Data:     name,
	}
}

// newText creates a detached text node.
func newText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// render serializes the subtree rooted at n to HTML.
func render(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
