// Package readability extracts the main article content from arbitrary
// HTML documents. It is a faithful implementation of the arc90
// readability heuristic as forked by readability-lxml: block-level
// elements are scored from their paragraph children, the best candidate
// seeds the article, qualifying siblings are pulled in, and a
// conditional cleaning pass strips the remaining boilerplate. A
// two-phase loop retries without aggressive pruning when the first pass
// strips too much.
package readability

import (
	"io"
	"log/slog"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Defaults for the extraction thresholds.
const (
	// DefaultMinTextLength is the minimum trimmed text length of a
	// paragraph for it to contribute to scoring. Lower values improve
	// detection on very short documents.
	DefaultMinTextLength = 25

	// DefaultRetryLength is the minimum acceptable output length. If
	// the first (ruthless) pass produces less, extraction re-runs in
	// lenient mode.
	DefaultRetryLength = 250
)

// Document wraps one parsed HTML tree for a single extraction.
//
// A Document is not re-entrant: Summary mutates the tree in place, so a
// new Document must be created for each input. It is also not safe for
// concurrent use; for parallel extraction give each goroutine its own
// Document.
type Document struct {
	root          *html.Node
	minTextLength int
	retryLength   int
	logger        *slog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithMinTextLength sets the minimum paragraph text length considered
// during scoring. Defaults to DefaultMinTextLength.
func WithMinTextLength(n int) Option {
	return func(d *Document) { d.minTextLength = n }
}

// WithRetryLength sets the minimum acceptable output length before the
// lenient retry pass kicks in. Defaults to DefaultRetryLength.
func WithRetryLength(n int) Option {
	return func(d *Document) { d.retryLength = n }
}

// WithLogger sets a logger for debug traces of scoring and cleaning
// decisions. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) { d.logger = l }
}

// New creates a Document around an already parsed tree. The Document
// takes ownership of the tree and will mutate it.
func New(root *html.Node, opts ...Option) *Document {
	d := &Document{
		root:          root,
		minTextLength: DefaultMinTextLength,
		retryLength:   DefaultRetryLength,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Parse reads and parses HTML and returns a Document for it. Parse
// errors come straight from the underlying parser.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return New(root, opts...), nil
}

// CleanHTML serializes the current document tree with presentation-only
// attributes stripped. Called before Summary it returns the normalized
// whole document; called after, the extracted fragment.
func (d *Document) CleanHTML() (string, error) {
	s, err := render(d.root)
	if err != nil {
		return "", err
	}
	return CleanAttributes(s), nil
}

// Summary extracts the article content and returns it as cleaned HTML.
//
// The first pass prunes unlikely candidates aggressively. If the result
// is shorter than the retry length the extraction re-runs in lenient
// mode on the already-mutated tree, and whatever the second pass
// produces is final. A document with no extractable content yields an
// empty or near-empty fragment, not an error.
func (d *Document) Summary() (string, error) {
	ruthless := true
	for {
		for _, n := range tags(d.root, "script", "style") {
			excise(n)
		}
		for _, n := range tags(d.root, "body") {
			setAttr(n, "id", "readabilityBody")
		}
		if ruthless {
			d.removeUnlikelyCandidates()
		}
		d.transformMisusedDivsIntoParagraphs()
		candidates := d.scoreParagraphs()

		best := d.selectBestCandidate(candidates)

		var article *html.Node
		if best != nil {
			article = d.getArticle(candidates, best)
		} else if ruthless {
			ruthless = false
			d.logger.Debug("ended up stripping too much - going for a safer parse")
			continue
		} else {
			d.logger.Debug("ruthless and lenient parsing did not work, returning raw html")
			article = d.body()
		}

		cleaned, err := d.sanitize(article, candidates)
		if err != nil {
			return "", err
		}
		if ruthless && utf8.RuneCountInString(cleaned) < d.retryLength {
			ruthless = false
			continue
		}
		return cleaned, nil
	}
}

// body returns the document's body element, or the whole tree if the
// document has none.
func (d *Document) body() *html.Node {
	if bodies := findAll(d.root, "body"); len(bodies) > 0 {
		return bodies[0]
	}
	return d.root
}
