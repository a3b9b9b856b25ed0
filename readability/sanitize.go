package readability

import (
	"strings"

	"golang.org/x/net/html"
)

// videoPlaceholder keeps a recognized video iframe from serializing as a
// self-closing tag by giving it text content.
const videoPlaceholder = "VIDEO"

// sanitize runs the aggressive cleaning pass over the assembled article
// and returns the serialized result. Headings with bad signals, forms,
// non-video iframes and container elements failing the content-density
// heuristics are excised. The fragment becomes the new document root.
func (d *Document) sanitize(node *html.Node, candidates *candidateMap) (string, error) {
	for _, header := range tags(node, "h1", "h2", "h3", "h4", "h5", "h6") {
		if classWeight(header) < 0 || linkDensity(header) > 0.33 {
			excise(header)
		}
	}

	for _, elem := range tags(node, "form", "textarea") {
		excise(elem)
	}

	for _, elem := range tags(node, "iframe") {
		if src, ok := getAttr(elem, "src"); ok && videoRe.MatchString(src) {
			for elem.FirstChild != nil {
				elem.RemoveChild(elem.FirstChild)
			}
			elem.AppendChild(newText(videoPlaceholder))
		} else {
			excise(elem)
		}
	}

	// Conditionally clean container elements. Traversal is reverse
	// document order per tag, so nested elements are decided before
	// their ancestors; the allow-set populated by the no-content
	// override below depends on that.
	allowed := make(map[*html.Node]bool)
	for _, elem := range reverseTags(node, "table", "ul", "div", "aside", "header", "footer", "section") {
		if allowed[elem] {
			continue
		}
		weight := classWeight(elem)
		var score float64
		if c, ok := candidates.get(elem); ok {
			score = c.score
		}

		if weight+score < 0 {
			d.logger.Debug("removed element", "tag", elem.Data, "score", score, "weight", weight)
			excise(elem)
			continue
		}
		if strings.Count(textContent(elem), ",") >= 10 {
			// Comma-rich content is presumed prose.
			d.logger.Debug("keeping comma-rich element", "tag", elem.Data)
			continue
		}

		counts := make(map[string]int, len(textCleanElems))
		for _, kind := range textCleanElems {
			counts[kind] = len(findAll(elem, kind))
		}
		// Bias against the li signal unless the block is extremely
		// list-heavy, and ignore hidden inputs.
		counts["li"] -= 100
		for _, input := range findAll(elem, "input") {
			if v, ok := getAttr(input, "type"); ok && v == "hidden" {
				counts["input"]--
			}
		}

		contentLength := textLength(elem)
		density := linkDensity(elem)
		var parentScore float64
		if elem.Parent != nil {
			if c, ok := candidates.get(elem.Parent); ok {
				parentScore = c.score
			}
		}

		toRemove := false
		var reason string
		switch {
		case counts["p"] > 0 && float64(counts["img"]) > 1+float64(counts["p"])*1.3:
			reason = "too many images"
			toRemove = true
		case counts["li"] > counts["p"] && elem.Data != "ol" && elem.Data != "ul":
			reason = "more <li>s than <p>s"
			toRemove = true
		case float64(counts["input"]) > float64(counts["p"])/3:
			reason = "less than 3x <p>s than <input>s"
			toRemove = true
		case contentLength < d.minTextLength && counts["img"] == 0:
			reason = "too short content without a single image"
			toRemove = true
		case contentLength < d.minTextLength && counts["img"] > 2:
			reason = "too short content and too many images"
			toRemove = true
		case weight < 25 && density > 0.2:
			reason = "too many links for its weight"
			toRemove = true
		case weight >= 25 && density > 0.5:
			reason = "too many links for its weight"
			toRemove = true
		case (counts["embed"] == 1 && contentLength < 75) || counts["embed"] > 1:
			reason = "embeds with too short content, or too many embeds"
			toRemove = true
		case contentLength == 0:
			reason = "no content"
			toRemove = true

			// An empty element sitting between large blocks of prose
			// is likely a structural wrapper: keep it and protect its
			// container descendants from removal when they are visited
			// later in this pass.
			var siblingLengths []int
			for sib := nextElementSibling(elem); sib != nil; sib = nextElementSibling(sib) {
				if l := textLength(sib); l > 0 {
					siblingLengths = append(siblingLengths, l)
					if len(siblingLengths) >= 1 {
						break
					}
				}
			}
			limit := len(siblingLengths) + 1
			for sib := prevElementSibling(elem); sib != nil; sib = prevElementSibling(sib) {
				if l := textLength(sib); l > 0 {
					siblingLengths = append(siblingLengths, l)
					if len(siblingLengths) >= limit {
						break
					}
				}
			}
			var sum int
			for _, l := range siblingLengths {
				sum += l
			}
			if len(siblingLengths) > 0 && sum > 1000 {
				toRemove = false
				for _, desc := range tags(elem, "table", "ul", "div", "section") {
					allowed[desc] = true
				}
			}
		}

		if toRemove {
			d.logger.Debug("removed element",
				"tag", elem.Data,
				"score", parentScore,
				"weight", weight,
				"reason", reason,
			)
			excise(elem)
		} else {
			d.logger.Debug("keeping element", "tag", elem.Data, "length", contentLength)
		}
	}

	d.root = node
	return d.CleanHTML()
}
