package readability

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// candidate pairs an element with its accumulated score.
type candidate struct {
	score float64
	elem  *html.Node
}

// candidateMap maps elements to their candidates while preserving
// insertion order. At most one candidate exists per element.
type candidateMap struct {
	byElem map[*html.Node]*candidate
	order  []*candidate
}

func newCandidateMap() *candidateMap {
	return &candidateMap{byElem: make(map[*html.Node]*candidate)}
}

func (m *candidateMap) get(elem *html.Node) (*candidate, bool) {
	c, ok := m.byElem[elem]
	return c, ok
}

func (m *candidateMap) add(c *candidate) {
	m.byElem[c.elem] = c
	m.order = append(m.order, c)
}

func (m *candidateMap) len() int {
	return len(m.order)
}

// classWeight scores an element's class and id attributes against the
// positive and negative token patterns. The checks are independent and
// additive: an attribute matching both patterns contributes nothing.
func classWeight(elem *html.Node) float64 {
	var weight float64
	for _, key := range []string{"class", "id"} {
		attr, ok := getAttr(elem, key)
		if !ok {
			continue
		}
		if negativeRe.MatchString(attr) {
			weight -= 25
		}
		if positiveRe.MatchString(attr) {
			weight += 25
		}
	}
	return weight
}

// scoreNode creates a candidate with the element's base score: its
// class weight plus a tag-family adjustment.
func scoreNode(elem *html.Node) *candidate {
	score := classWeight(elem)
	switch name := strings.ToLower(elem.Data); {
	case divScores[name]:
		score += 5
	case blockScores[name]:
		score += 3
	case badElemScores[name]:
		score -= 3
	case structureScores[name]:
		score -= 5
	}
	return &candidate{score: score, elem: elem}
}

// linkDensity returns the fraction of the element's text that lies
// inside anchor descendants. The element's own text length is clamped
// to 1, so the result is always in [0, 1].
func linkDensity(elem *html.Node) float64 {
	totalLength := textLength(elem)
	if totalLength == 0 {
		totalLength = 1
	}
	linkLength := 0
	for _, a := range findAll(elem, "a") {
		linkLength += textLength(a)
	}
	return float64(linkLength) / float64(totalLength)
}

// scoreParagraphs scores the parent and grandparent of every
// paragraph-like element that carries enough text. Each paragraph
// contributes 1 point, a point per comma-separated segment, and up to 3
// points for length; parents receive the full contribution and
// grandparents half. Final scores are scaled once by (1 - link density)
// so link-heavy branches lose out.
func (d *Document) scoreParagraphs() *candidateMap {
	candidates := newCandidateMap()
	for _, elem := range tags(d.root, "p", "pre", "td") {
		parent := elem.Parent
		if parent == nil || parent.Type != html.ElementNode {
			continue
		}
		var grandParent *html.Node
		if parent.Parent != nil && parent.Parent.Type == html.ElementNode {
			grandParent = parent.Parent
		}

		elemText := trim(textContent(elem))
		elemTextLen := utf8.RuneCountInString(elemText)

		// Too short paragraphs don't count.
		if elemTextLen < d.minTextLength {
			continue
		}

		parentCandidate, ok := candidates.get(parent)
		if !ok {
			parentCandidate = scoreNode(parent)
			candidates.add(parentCandidate)
		}

		var grandParentCandidate *candidate
		if grandParent != nil {
			grandParentCandidate, ok = candidates.get(grandParent)
			if !ok {
				grandParentCandidate = scoreNode(grandParent)
				candidates.add(grandParentCandidate)
			}
		}

		score := 1 + float64(len(strings.Split(elemText, ","))) + math.Min(float64(elemTextLen)/100, 3)

		parentCandidate.score += score
		if grandParentCandidate != nil {
			grandParentCandidate.score += score / 2
		}
	}

	// Scale candidate scores based on link density. Good content has a
	// relatively small link density (5% or less) and is mostly
	// unaffected by this operation.
	for _, c := range candidates.order {
		density := linkDensity(c.elem)
		scaled := c.score * (1 - density)
		d.logger.Debug("branch link density scaling",
			"score", c.score,
			"density", density,
			"scaled", scaled,
		)
		c.score = scaled
	}

	return candidates
}
