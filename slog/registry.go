package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sigles"
)

// Ensure LoggingRegistry implements sigles.ExtractorRegistry.
var _ sigles.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with logging of source detection.
type LoggingRegistry struct {
	next     sigles.ExtractorRegistry
	detector sigles.SourceDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next sigles.ExtractorRegistry, detector sigles.SourceDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(source sigles.Source) sigles.Extractor {
	return r.next.Get(source)
}

// GetForHTML detects the source, logs it, and returns the matching extractor.
func (r *LoggingRegistry) GetForHTML(html string) sigles.Extractor {
	begin := time.Now()
	source := r.detector.Detect(html)
	name := string(source)
	if source == "" {
		name = "(unknown)"
	}
	r.logger.Info("source detection",
		"source", name,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(extractor sigles.Extractor) {
	r.next.Register(extractor)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []sigles.Source {
	return r.next.List()
}
