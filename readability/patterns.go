package readability

import "regexp"

// Token patterns driving candidate pruning, class weighting and
// sanitization. These lists are a compatibility surface: extraction
// quality depends on the exact tokens, so they must not be "improved"
// with equivalent-seeming substitutes.
var (
	unlikelyCandidatesRe = regexp.MustCompile(`(?i)combx|comment|community|disqus|extra|foot|header|menu|remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup|tweet|twitter`)

	okMaybeItsACandidateRe = regexp.MustCompile(`(?i)and|article|body|column|main|shadow`)

	positiveRe = regexp.MustCompile(`(?i)article|body|content|entry|hentry|main|page|pagination|post|text|blog|story`)

	negativeRe = regexp.MustCompile(`(?i)combx|comment|com-|contact|foot|footer|footnote|masthead|media|meta|outbrain|promo|related|scroll|shoutbox|sidebar|sponsor|shopping|tags|tool|widget`)

	// Matches an opening tag of any block-level element in serialized
	// markup. Used for the shallow div-to-p check, which intentionally
	// inspects direct children only.
	divToPElementsRe = regexp.MustCompile(`(?i)<(a|blockquote|dl|div|img|ol|p|pre|table|ul)`)

	videoRe = regexp.MustCompile(`(?i)https?://(www\.)?(youtube|vimeo)\.com`)

	sentenceEndRe = regexp.MustCompile(`\.( |$)`)
)

// Tag-family score adjustments applied by scoreNode.
var (
	divScores       = map[string]bool{"div": true, "article": true}
	blockScores     = map[string]bool{"pre": true, "td": true, "blockquote": true}
	badElemScores   = map[string]bool{"address": true, "ol": true, "ul": true, "dl": true, "dd": true, "dt": true, "li": true, "form": true, "aside": true}
	structureScores = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "th": true, "header": true, "footer": true, "nav": true}
)

// textCleanElems are the descendant kinds counted by the sanitizer's
// conditional cleaning filter.
var textCleanElems = []string{"p", "img", "li", "a", "embed", "input"}
