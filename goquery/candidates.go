package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sigles"
)

// strategy is one heuristic for locating definitions in a page. Strategies
// of an extractor run in order until one of them yields a candidate.
type strategy func(doc *goquery.Document, term string, c *candidates)

// candidates collects deduplicated records for one source, capped at
// sigles.MaxCandidates.
type candidates struct {
	source  sigles.Source
	term    string
	seen    map[string]struct{}
	records []*sigles.Record
}

func newCandidates(source sigles.Source, term string) *candidates {
	return &candidates{
		source: source,
		term:   strings.TrimSpace(term),
		seen:   make(map[string]struct{}),
	}
}

// add records a definition. Empty definitions, definitions that merely
// repeat the term and duplicates (case-insensitive) are ignored.
func (c *candidates) add(definition, category string) {
	if c.full() {
		return
	}
	if definition == "" || strings.EqualFold(definition, c.term) {
		return
	}
	key := strings.ToLower(definition)
	if _, ok := c.seen[key]; ok {
		return
	}

	rec := &sigles.Record{
		Source:     c.source,
		Term:       sigles.DisplayTerm(c.term),
		Definition: definition,
		Category:   category,
	}
	if rec.Validate() != nil {
		return
	}
	c.seen[key] = struct{}{}
	c.records = append(c.records, rec)
}

func (c *candidates) full() bool {
	return len(c.records) >= sigles.MaxCandidates
}

func (c *candidates) empty() bool {
	return len(c.records) == 0
}

// result returns the collected records or ENOTFOUND when there are none.
func (c *candidates) result() ([]*sigles.Record, error) {
	if c.empty() {
		return nil, sigles.Errorf(sigles.ENOTFOUND, "no %s definition for %q", c.source, c.term)
	}
	return c.records, nil
}

// run applies strategies in order and stops at the first one that finds
// at least one candidate.
func run(doc *goquery.Document, term string, c *candidates, strategies ...strategy) ([]*sigles.Record, error) {
	for _, s := range strategies {
		s(doc, term, c)
		if !c.empty() {
			break
		}
	}
	return c.result()
}

// tableRows reads rows of the table with the given class. Each row must
// have 2 or 3 cells: key, definition and an optional category. When
// matchKey is set, rows whose key differs from the term are discarded.
func tableRows(class string, matchKey bool) strategy {
	return func(doc *goquery.Document, term string, c *candidates) {
		doc.Find("table." + class + " tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			cells := row.ChildrenFiltered("td")
			if cells.Length() < 2 {
				return true
			}
			if matchKey && !rowMatches(cells, term) {
				return true
			}
			var category string
			if cells.Length() >= 3 {
				category = squashText(cells.Eq(2))
			}
			c.add(squashText(cells.Eq(1)), category)
			return !c.full()
		})
	}
}

// rowMatches reports whether the first cell of a row equals the term.
func rowMatches(cells *goquery.Selection, term string) bool {
	return strings.EqualFold(squashText(cells.First()), strings.TrimSpace(term))
}

// scanAnchors is the last-resort strategy: every anchor whose target
// contains the lower-cased term contributes the text of its container,
// minus the leading term.
func scanAnchors(doc *goquery.Document, term string, c *candidates) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return
	}
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := decodedHref(a)
		if !ok || !strings.Contains(strings.ToLower(href), needle) {
			return true
		}
		c.add(stripTermPrefix(squashText(a.Parent()), term), "")
		return !c.full()
	})
}
