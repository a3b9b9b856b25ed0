// Package mock provides mock implementations of readable interfaces for testing.
package mock

import "github.com/fwojciec/readable"

var _ readable.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readable.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*readable.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*readable.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ readable.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of readable.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*readable.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*readable.Metadata, error) {
	return e.ExtractMetadataFn(html)
}
