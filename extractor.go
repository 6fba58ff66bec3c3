package sigles

// MaxCandidates caps the number of records an extractor returns per page.
const MaxCandidates = 10

// Extractor turns one source's page markup into candidate records.
type Extractor interface {
	// Extract parses html and returns the records found for term.
	// Returns ENOTFOUND when no heuristic matches; never returns an
	// empty slice with a nil error.
	Extract(html string, term string) ([]*Record, error)

	// Source returns the source whose layout the extractor understands.
	Source() Source
}

// SourceDetector identifies which source produced a page.
type SourceDetector interface {
	// Detect analyzes HTML and returns the source it came from.
	// Returns the empty Source if the page cannot be attributed.
	Detect(html string) Source
}

// ExtractorRegistry manages the extractors of each source.
type ExtractorRegistry interface {
	// Get returns the primary extractor for a source, or nil.
	Get(source Source) Extractor

	// GetForHTML detects the source of a page and returns its extractor.
	// Returns nil if the source cannot be determined.
	GetForHTML(html string) Extractor

	// Register adds the primary extractor for its source, replacing any
	// previous one.
	Register(extractor Extractor)

	// List returns the registered sources in priority order.
	List() []Source
}
