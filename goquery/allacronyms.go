package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sigles"
)

// Ensure AllAcronymsExtractor implements sigles.Extractor at compile time.
var _ sigles.Extractor = (*AllAcronymsExtractor)(nil)

// AllAcronymsExtractor extracts meanings from All Acronyms pages.
// It reads .meaning containers and falls back to scanning links that
// point at the term.
type AllAcronymsExtractor struct{}

// NewAllAcronymsExtractor creates a new AllAcronymsExtractor.
func NewAllAcronymsExtractor() *AllAcronymsExtractor {
	return &AllAcronymsExtractor{}
}

// Source returns sigles.SourceAllAcronyms.
func (e *AllAcronymsExtractor) Source() sigles.Source {
	return sigles.SourceAllAcronyms
}

// Extract returns up to sigles.MaxCandidates records for term.
func (e *AllAcronymsExtractor) Extract(html string, term string) ([]*sigles.Record, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	c := newCandidates(sigles.SourceAllAcronyms, term)
	return run(doc, term, c, meaningContainers, scanAnchors)
}

// meaningContainers reads .meaning elements, dropping a leading copy of
// the term. A nested .category element supplies the category.
func meaningContainers(doc *goquery.Document, term string, c *candidates) {
	doc.Find(".meaning").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		category := squashText(sel.Find(".category").First())
		body := sel.Clone()
		body.Find(".category").Remove()
		c.add(stripTermPrefix(squashText(body), term), category)
		return !c.full()
	})
}
