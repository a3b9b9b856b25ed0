package readability

import (
	"strings"

	"github.com/fwojciec/readable"
)

// Ensure Extractor implements readable.Extractor at compile time.
var _ readable.Extractor = (*Extractor)(nil)

// Extractor extracts main content from HTML using the readability
// heuristic. The zero value is not usable; use NewExtractor.
type Extractor struct {
	opts []Option
}

// NewExtractor creates a new Extractor. The options are applied to the
// Document created for each extraction.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{opts: opts}
}

// Extract processes raw HTML and returns the main content. The title is
// read from the title element before the tree is mutated.
func (e *Extractor) Extract(rawHTML string) (*readable.ExtractResult, error) {
	if rawHTML == "" {
		return nil, readable.Errorf(readable.EINVALID, "empty HTML input")
	}

	doc, err := Parse(strings.NewReader(rawHTML), e.opts...)
	if err != nil {
		return nil, err
	}

	title := doc.title()

	content, err := doc.Summary()
	if err != nil {
		return nil, err
	}

	return &readable.ExtractResult{
		Title:       title,
		ContentHTML: content,
	}, nil
}

// title returns the trimmed text of the document's title element.
func (d *Document) title() string {
	if titles := findAll(d.root, "title"); len(titles) > 0 {
		return trim(textContent(titles[0]))
	}
	return ""
}
