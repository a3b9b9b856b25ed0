package readability

import "regexp"

// badAttrs lists presentation-only attributes stripped from serialized
// markup: sizing, inline style, colors, backgrounds and event handlers.
const badAttrs = `width|height|style|[-a-z]*color|background[-a-z]*|on[a-z]*`

const (
	quotedValue   = `'[^']+'|"[^"]+"`
	unquotedValue = `[^ "'>]+`
)

// htmlStripRe matches a tag containing one bad attribute together with
// its value. Group 1 is the tag content before the attribute, group 2
// the content after it.
var htmlStripRe = regexp.MustCompile(
	`(?i)<([^>]+) (?:` + badAttrs + `) *= *(?:` + unquotedValue + `|` + quotedValue + `)([^>]*)>`,
)

// CleanAttributes removes presentation-only attributes from serialized
// markup. It re-scans after every substitution because removing one
// attribute can expose another match in the same tag, and stops at a
// fixed point. Input without matches is returned unchanged, so the
// function is idempotent on its own output.
func CleanAttributes(html string) string {
	for htmlStripRe.MatchString(html) {
		html = htmlStripRe.ReplaceAllString(html, "<${1}${2}>")
	}
	return html
}
