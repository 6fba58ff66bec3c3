package goquery

import "github.com/fwojciec/sigles"

var _ sigles.ExtractorRegistry = (*Registry)(nil)

// Registry manages the primary extractor of each source and attributes
// saved pages to a source using a SourceDetector.
type Registry struct {
	detector   sigles.SourceDetector
	extractors map[sigles.Source]sigles.Extractor
}

// NewRegistry creates an empty Registry using the given detector.
func NewRegistry(detector sigles.SourceDetector) *Registry {
	return &Registry{
		detector:   detector,
		extractors: make(map[sigles.Source]sigles.Extractor),
	}
}

// NewDefaultRegistry returns a Registry with the primary extractor of
// every supported source.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewDetector())
	r.Register(NewUsitoExtractor())
	r.Register(NewAbbreviationsExtractor())
	r.Register(NewAcronymFinderExtractor())
	r.Register(NewAllAcronymsExtractor())
	return r
}

// Get returns the extractor for a source.
// Returns nil if no extractor is registered for the source.
func (r *Registry) Get(source sigles.Source) sigles.Extractor {
	return r.extractors[source]
}

// GetForHTML detects the source of a page and returns its extractor.
// Returns nil if the source is unknown or has no registered extractor.
func (r *Registry) GetForHTML(html string) sigles.Extractor {
	source := r.detector.Detect(html)
	if source == "" {
		return nil
	}
	return r.extractors[source]
}

// Register adds an extractor for its source.
// If an extractor is already registered for the source, it is replaced.
func (r *Registry) Register(extractor sigles.Extractor) {
	r.extractors[extractor.Source()] = extractor
}

// List returns the registered sources in priority order.
func (r *Registry) List() []sigles.Source {
	sources := make([]sigles.Source, 0, len(r.extractors))
	for _, s := range sigles.Sources {
		if _, ok := r.extractors[s]; ok {
			sources = append(sources, s)
		}
	}
	return sources
}
