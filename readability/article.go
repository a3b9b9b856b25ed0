package readability

import (
	"math"
	"sort"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// selectBestCandidate returns the highest-scoring candidate, or nil if
// nothing was scored. Ties are broken by insertion order.
func (d *Document) selectBestCandidate(candidates *candidateMap) *candidate {
	if candidates.len() == 0 {
		return nil
	}
	sorted := make([]*candidate, len(candidates.order))
	copy(sorted, candidates.order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})
	for i := 0; i < len(sorted) && i < 5; i++ {
		d.logger.Debug("top candidate", "rank", i+1, "tag", sorted[i].elem.Data, "score", sorted[i].score)
	}
	return sorted[0]
}

// getArticle assembles the article around the best candidate. Its
// siblings are scanned for related content (preambles, content split
// by removed ads) and the ones passing the score threshold or the
// paragraph text heuristics are moved into a fresh div root in their
// original order.
func (d *Document) getArticle(candidates *candidateMap, best *candidate) *html.Node {
	siblingScoreThreshold := math.Max(10, best.score*0.2)
	output := newElement("div")

	siblings := []*html.Node{best.elem}
	if best.elem.Parent != nil {
		siblings = childElements(best.elem.Parent)
	}

	for _, sibling := range siblings {
		append_ := false
		if sibling == best.elem {
			append_ = true
		} else if c, ok := candidates.get(sibling); ok && c.score >= siblingScoreThreshold {
			append_ = true
		} else if sibling.Data == "p" {
			density := linkDensity(sibling)
			nodeContent := leadingText(sibling)
			nodeLength := utf8.RuneCountInString(nodeContent)

			if nodeLength > 80 && density < 0.25 {
				append_ = true
			} else if nodeLength <= 80 && density == 0 && sentenceEndRe.MatchString(nodeContent) {
				append_ = true
			}
		}
		if append_ {
			// The text trailing the element travels with it, so prose
			// sitting directly between included siblings is not lost.
			tail := tailTextNodes(sibling)
			excise(sibling)
			output.AppendChild(sibling)
			for _, t := range tail {
				excise(t)
				output.AppendChild(t)
			}
		}
	}

	return output
}
