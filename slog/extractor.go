// Package slog provides logging decorators for politext services using
// the standard library's structured logger.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/politext"
)

// Ensure LoggingExtractor implements politext.Extractor.
var _ politext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with operation logging.
type LoggingExtractor struct {
	next   politext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next politext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"input_bytes", len(html),
			"output_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
