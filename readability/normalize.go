package readability

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// classAndID returns the space-joined values of the element's class and
// id attributes. Absent attributes contribute nothing.
func classAndID(n *html.Node) string {
	var parts []string
	if v, ok := getAttr(n, "class"); ok {
		parts = append(parts, v)
	}
	if v, ok := getAttr(n, "id"); ok {
		parts = append(parts, v)
	}
	return strings.Join(parts, " ")
}

// removeUnlikelyCandidates excises elements whose class/id tokens match
// the unlikely-candidate pattern without an exonerating match. Runs only
// in the ruthless phase; html and body are never removed.
func (d *Document) removeUnlikelyCandidates() {
	for _, elem := range allElements(d.root) {
		attrs := classAndID(elem)
		if utf8.RuneCountInString(attrs) < 2 {
			continue
		}
		if unlikelyCandidatesRe.MatchString(attrs) &&
			!okMaybeItsACandidateRe.MatchString(attrs) &&
			elem.Data != "html" && elem.Data != "body" {
			d.logger.Debug("removing unlikely candidate", "tag", elem.Data)
			excise(elem)
		}
	}
}

// transformMisusedDivsIntoParagraphs rewrites divs so that paragraph
// scoring can see them.
//
// First pass: a div with no block-level element among its direct
// children becomes a p. The check is against the serialized children,
// so it intentionally ignores nested descendants (an img buried inside
// an a still counts, an img inside a span does not). This shallow check
// is a compatibility quirk carried over from the reference heuristic.
//
// Second pass: direct text at the start of a div, and text trailing any
// child, is wrapped in explicit p elements; br children are dropped.
// The pass re-collects the div set, so divs retagged to p above are not
// revisited.
func (d *Document) transformMisusedDivsIntoParagraphs() {
	for _, elem := range findAll(d.root, "div") {
		var b strings.Builder
		for c := elem.FirstChild; c != nil; c = c.NextSibling {
			s, err := render(c)
			if err != nil {
				continue
			}
			b.WriteString(s)
		}
		if !divToPElementsRe.MatchString(b.String()) {
			elem.Data = "p"
			elem.DataAtom = atom.P
		}
	}

	for _, elem := range findAll(d.root, "div") {
		if lead := leadingTextNodes(elem); len(lead) > 0 && trim(leadingText(elem)) != "" {
			p := newElement("p")
			for _, t := range lead {
				elem.RemoveChild(t)
				p.AppendChild(t)
			}
			if elem.FirstChild != nil {
				elem.InsertBefore(p, elem.FirstChild)
			} else {
				elem.AppendChild(p)
			}
		}

		children := childElements(elem)
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			if tail := tailTextNodes(child); len(tail) > 0 {
				var text strings.Builder
				for _, t := range tail {
					text.WriteString(t.Data)
				}
				if trim(text.String()) != "" {
					p := newElement("p")
					for _, t := range tail {
						elem.RemoveChild(t)
						p.AppendChild(t)
					}
					elem.InsertBefore(p, child.NextSibling)
				}
			}
			if child.Data == "br" {
				excise(child)
			}
		}
	}
}
