package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sigles"
	"github.com/fwojciec/sigles/text"
)

// AcronymAnnexPath is the path segment of links on the Usito acronym index.
const AcronymAnnexPath = "/annexes/sigles"

// Ensure UsitoIndexExtractor implements sigles.Extractor at compile time.
var _ sigles.Extractor = (*UsitoIndexExtractor)(nil)

// UsitoIndexExtractor reads a definition from the alphabetic acronym index
// of Usito. It is the fallback for terms without a regular entry page.
type UsitoIndexExtractor struct{}

// NewUsitoIndexExtractor creates a new UsitoIndexExtractor.
func NewUsitoIndexExtractor() *UsitoIndexExtractor {
	return &UsitoIndexExtractor{}
}

// Source returns sigles.SourceUsito.
func (e *UsitoIndexExtractor) Source() sigles.Source {
	return sigles.SourceUsito
}

// Extract scans annex links whose label matches term once diacritics and
// case are ignored. The definition is the text that follows the label in
// the link's container. The first matching link with a definition wins.
func (e *UsitoIndexExtractor) Extract(html string, term string) ([]*sigles.Record, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	want := text.Normalize(strings.TrimSpace(term))
	var rec *sigles.Record

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := decodedHref(a)
		if !ok || !strings.Contains(href, AcronymAnnexPath) {
			return true
		}
		label := squashText(a)
		if label == "" || text.Normalize(label) != want {
			return true
		}

		re := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(label) + `\s+(.+)`)
		m := re.FindStringSubmatch(flatText(a.Parent()))
		if m == nil {
			return true
		}
		definition := text.Squash(m[1])
		if definition == "" {
			return true
		}

		rec = &sigles.Record{
			Source:     sigles.SourceUsito,
			Term:       sigles.DisplayTerm(term),
			Definition: definition,
		}
		return false
	})

	if rec == nil || rec.Validate() != nil {
		return nil, sigles.Errorf(sigles.ENOTFOUND, "%q not in usito acronym index", term)
	}
	return []*sigles.Record{rec}, nil
}
