package readable

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the main article content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// A document with no extractable content yields an empty or
	// near-empty ContentHTML rather than an error; Extract fails only
	// when the input cannot be parsed at all.
	Extract(html string) (*ExtractResult, error)
}

// Metadata holds page-level metadata gathered from the document head.
type Metadata struct {
	Title        string
	Description  string
	CanonicalURL string
}

// MetadataExtractor extracts page metadata from HTML.
type MetadataExtractor interface {
	// ExtractMetadata reads title, description and canonical URL from
	// the document head (og:/twitter: meta tags, <title>, first <h1>).
	ExtractMetadata(html string) (*Metadata, error)
}
