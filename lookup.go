package sigles

import "context"

// Provider looks a term up in one source: it builds the source URL,
// fetches the page and extracts candidate records.
type Provider interface {
	// Lookup returns up to MaxCandidates records for term.
	// Returns ENOTFOUND when the source has no match and EUNAVAILABLE
	// when the page could not be fetched.
	Lookup(ctx context.Context, term string) ([]*Record, error)

	// Source returns the source queried by the provider.
	Source() Source
}

// LookupService answers lookups across sources.
type LookupService interface {
	// LookupUsito returns the Usito record for term, trying the entry
	// page first and the acronym index second.
	// Returns ENOTFOUND if neither strategy matches.
	LookupUsito(ctx context.Context, term string) (*Record, error)

	// LookupAll queries every source in priority order and returns one
	// record per matching source.
	// Returns ENOTFOUND if no source produced a record.
	LookupAll(ctx context.Context, term string) (*Result, error)

	// LookupSource returns every candidate record a single source yields.
	// Returns ENOTFOUND if the source has no match.
	LookupSource(ctx context.Context, source Source, term string) ([]*Record, error)
}
