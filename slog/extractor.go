// Package slog provides logging decorators for readable services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/readable"
)

// Ensure LoggingExtractor implements readable.Extractor.
var _ readable.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   readable.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next readable.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (result *readable.ExtractResult, err error) {
	defer func(begin time.Time) {
		var title string
		var contentBytes int
		if result != nil {
			title = result.Title
			contentBytes = len(result.ContentHTML)
		}
		e.logger.Info("extract",
			"input_bytes", len(html),
			"title", title,
			"content_bytes", contentBytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
