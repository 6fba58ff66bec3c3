package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sigles"
)

// Ensure AbbreviationsExtractor implements sigles.Extractor at compile time.
var _ sigles.Extractor = (*AbbreviationsExtractor)(nil)

// AbbreviationsExtractor extracts definitions from Abbreviations.com result
// pages. Only rows whose abbreviation equals the term are kept.
//
// Strategies, in order:
//   - result table: table.tdata rows (abbreviation, definition, category)
//   - description paragraphs: p.desc, with the category from p.path
type AbbreviationsExtractor struct{}

// NewAbbreviationsExtractor creates a new AbbreviationsExtractor.
func NewAbbreviationsExtractor() *AbbreviationsExtractor {
	return &AbbreviationsExtractor{}
}

// Source returns sigles.SourceAbbreviations.
func (e *AbbreviationsExtractor) Source() sigles.Source {
	return sigles.SourceAbbreviations
}

// Extract returns up to sigles.MaxCandidates records for term.
func (e *AbbreviationsExtractor) Extract(html string, term string) ([]*sigles.Record, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	c := newCandidates(sigles.SourceAbbreviations, term)
	return run(doc, term, c, tableRows("tdata", true), descParagraphs)
}

// descParagraphs reads p.desc paragraphs. A paragraph that sits inside a
// table row is only kept when the row's abbreviation matches the term.
func descParagraphs(doc *goquery.Document, term string, c *candidates) {
	doc.Find("p.desc").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if row := p.Closest("tr"); row.Length() > 0 {
			cells := row.ChildrenFiltered("td")
			if cells.Length() > 0 && !rowMatches(cells, term) {
				return true
			}
		}
		c.add(squashText(p), squashText(p.NextFiltered("p.path")))
		return !c.full()
	})
}
