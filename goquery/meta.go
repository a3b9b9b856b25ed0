// Package goquery provides selector-based metadata extraction from HTML
// documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readable"
)

// Ensure MetaExtractor implements readable.MetadataExtractor at compile time.
var _ readable.MetadataExtractor = (*MetaExtractor)(nil)

// MetaExtractor reads page metadata from meta tags and document
// structure. Social-graph tags (og:, twitter:) are preferred over the
// title element because they usually carry the article title without
// the site-name suffix.
type MetaExtractor struct{}

// NewMetaExtractor creates a new MetaExtractor.
func NewMetaExtractor() *MetaExtractor {
	return &MetaExtractor{}
}

// ExtractMetadata reads title, description and canonical URL from the
// document head.
func (e *MetaExtractor) ExtractMetadata(html string) (*readable.Metadata, error) {
	if html == "" {
		return nil, readable.Errorf(readable.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, readable.Errorf(readable.EINVALID, "failed to parse HTML: %v", err)
	}

	return &readable.Metadata{
		Title:        e.title(doc),
		Description:  e.description(doc),
		CanonicalURL: e.canonicalURL(doc),
	}, nil
}

// title returns the page title, in order of preference: og:title,
// twitter:title, the title element, the first h1.
func (e *MetaExtractor) title(doc *goquery.Document) string {
	if v := metaContent(doc, `meta[property="og:title"]`); v != "" {
		return v
	}
	if v := metaContent(doc, `meta[name="twitter:title"]`); v != "" {
		return v
	}
	if v := strings.TrimSpace(doc.Find("title").First().Text()); v != "" {
		return v
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// description returns the page description from og:description or the
// description meta tag.
func (e *MetaExtractor) description(doc *goquery.Document) string {
	if v := metaContent(doc, `meta[property="og:description"]`); v != "" {
		return v
	}
	return metaContent(doc, `meta[name="description"]`)
}

// canonicalURL returns the canonical link target, falling back to og:url.
func (e *MetaExtractor) canonicalURL(doc *goquery.Document) string {
	if v, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		return strings.TrimSpace(v)
	}
	return metaContent(doc, `meta[property="og:url"]`)
}

// metaContent returns the trimmed content attribute of the first
// element matching the selector.
func metaContent(doc *goquery.Document, selector string) string {
	v, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(v)
}
