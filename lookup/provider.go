// Package lookup wires fetchers and extractors into per-source providers
// and aggregates them into a sigles.LookupService.
package lookup

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/sigles"
	"github.com/fwojciec/sigles/goquery"
	"github.com/fwojciec/sigles/text"
)

// Source page locations.
const (
	UsitoBaseURL         = "https://usito.usherbrooke.ca"
	AbbreviationsBaseURL = "https://www.abbreviations.com"
	AcronymFinderBaseURL = "https://www.acronymfinder.com"
	AllAcronymsBaseURL   = "https://www.allacronyms.com"
)

// UsitoURL returns the Usito entry page for term.
func UsitoURL(term string) string {
	return UsitoBaseURL + "/d%C3%A9finitions/" + url.PathEscape(strings.TrimSpace(term))
}

// UsitoIndexURL returns the acronym index page holding term, keyed by the
// first letter of the normalized term.
func UsitoIndexURL(term string) string {
	letter := ""
	if r, _ := utf8.DecodeRuneInString(text.Normalize(strings.TrimSpace(term))); r != utf8.RuneError {
		letter = string(r)
	}
	return UsitoBaseURL + goquery.AcronymAnnexPath + "/" + url.PathEscape(letter)
}

// AbbreviationsURL returns the Abbreviations.com result page for term.
func AbbreviationsURL(term string) string {
	return AbbreviationsBaseURL + "/" + url.PathEscape(strings.TrimSpace(term))
}

// AcronymFinderURL returns the Acronym Finder result page for term.
func AcronymFinderURL(term string) string {
	return AcronymFinderBaseURL + "/" + url.PathEscape(strings.TrimSpace(term)) + ".html"
}

// AllAcronymsURL returns the All Acronyms result page for term.
func AllAcronymsURL(term string) string {
	return AllAcronymsBaseURL + "/" + url.PathEscape(strings.TrimSpace(term))
}

// Ensure Provider implements sigles.Provider at compile time.
var _ sigles.Provider = (*Provider)(nil)

// Provider fetches the page URL builds for a term and runs Extractor on it.
type Provider struct {
	URL       func(term string) string
	Fetcher   sigles.Fetcher
	Extractor sigles.Extractor
}

// Source returns the source of the underlying extractor.
func (p *Provider) Source() sigles.Source {
	return p.Extractor.Source()
}

// Lookup fetches and extracts candidates for term. Every record carries
// the URL of the page it came from. A missing page is a miss (ENOTFOUND);
// any other fetch failure is EUNAVAILABLE.
func (p *Provider) Lookup(ctx context.Context, term string) ([]*sigles.Record, error) {
	if strings.TrimSpace(term) == "" {
		return nil, sigles.Errorf(sigles.EINVALID, "term required")
	}

	pageURL := p.URL(term)
	html, err := p.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if sigles.ErrorCode(err) == sigles.ENOTFOUND {
			return nil, sigles.Errorf(sigles.ENOTFOUND, "no %s page for %q", p.Source(), term)
		}
		return nil, sigles.Errorf(sigles.EUNAVAILABLE, "fetch %s: %v", pageURL, err)
	}

	records, err := p.Extractor.Extract(html, term)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		rec.URL = pageURL
	}
	return records, nil
}

// Ensure Chain implements sigles.Provider at compile time.
var _ sigles.Provider = (Chain)(nil)

// Chain tries providers of the same source in order and returns the first
// successful result.
type Chain []sigles.Provider

// Source returns the source of the first provider.
func (c Chain) Source() sigles.Source {
	if len(c) == 0 {
		return ""
	}
	return c[0].Source()
}

// Lookup returns the records of the first provider that matches. When all
// of them fail, the first error other than ENOTFOUND is returned, so an
// unreachable source is not reported as a miss.
func (c Chain) Lookup(ctx context.Context, term string) ([]*sigles.Record, error) {
	var failure error
	for _, p := range c {
		records, err := p.Lookup(ctx, term)
		if err == nil {
			return records, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if failure == nil && sigles.ErrorCode(err) != sigles.ENOTFOUND {
			failure = err
		}
	}
	if failure != nil {
		return nil, failure
	}
	return nil, sigles.Errorf(sigles.ENOTFOUND, "no %s match for %q", c.Source(), term)
}

// NewProviders returns one provider per source in priority order, all
// sharing fetcher. The Usito provider falls back to the acronym index.
func NewProviders(fetcher sigles.Fetcher) []sigles.Provider {
	return []sigles.Provider{
		NewUsitoProvider(fetcher),
		&Provider{URL: AbbreviationsURL, Fetcher: fetcher, Extractor: goquery.NewAbbreviationsExtractor()},
		&Provider{URL: AcronymFinderURL, Fetcher: fetcher, Extractor: goquery.NewAcronymFinderExtractor()},
		&Provider{URL: AllAcronymsURL, Fetcher: fetcher, Extractor: goquery.NewAllAcronymsExtractor()},
	}
}

// NewUsitoProvider returns the entry page provider chained with the
// acronym index fallback.
func NewUsitoProvider(fetcher sigles.Fetcher) Chain {
	return Chain{
		&Provider{URL: UsitoURL, Fetcher: fetcher, Extractor: goquery.NewUsitoExtractor()},
		&Provider{URL: UsitoIndexURL, Fetcher: fetcher, Extractor: goquery.NewUsitoIndexExtractor()},
	}
}
