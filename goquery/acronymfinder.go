package goquery

import "github.com/fwojciec/sigles"

// Ensure AcronymFinderExtractor implements sigles.Extractor at compile time.
var _ sigles.Extractor = (*AcronymFinderExtractor)(nil)

// AcronymFinderExtractor extracts meanings from Acronym Finder pages.
// It reads table.result-list rows (acronym, meaning, category) and falls
// back to scanning links that point at the term.
type AcronymFinderExtractor struct{}

// NewAcronymFinderExtractor creates a new AcronymFinderExtractor.
func NewAcronymFinderExtractor() *AcronymFinderExtractor {
	return &AcronymFinderExtractor{}
}

// Source returns sigles.SourceAcronymFinder.
func (e *AcronymFinderExtractor) Source() sigles.Source {
	return sigles.SourceAcronymFinder
}

// Extract returns up to sigles.MaxCandidates records for term.
func (e *AcronymFinderExtractor) Extract(html string, term string) ([]*sigles.Record, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	c := newCandidates(sigles.SourceAcronymFinder, term)
	return run(doc, term, c, tableRows("result-list", false), scanAnchors)
}
