package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sigles"
)

// Ensure Detector implements sigles.SourceDetector at compile time.
var _ sigles.SourceDetector = (*Detector)(nil)

// Detector attributes saved pages to a source. It checks the canonical URL
// metadata first and falls back to layout markers unique to each site.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// sourceHosts maps host suffixes to sources.
var sourceHosts = []struct {
	suffix string
	source sigles.Source
}{
	{"usito.usherbrooke.ca", sigles.SourceUsito},
	{"abbreviations.com", sigles.SourceAbbreviations},
	{"acronymfinder.com", sigles.SourceAcronymFinder},
	{"allacronyms.com", sigles.SourceAllAcronyms},
}

// Detect analyzes HTML and returns the source it came from.
// Returns the empty Source if the page cannot be attributed.
func (d *Detector) Detect(html string) sigles.Source {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	// Canonical metadata is the most reliable signal when present.
	if source := d.detectFromMetadata(doc); source != "" {
		return source
	}

	if d.hasSelector(doc, "table.tdata") || d.hasSelector(doc, "p.desc") {
		return sigles.SourceAbbreviations
	}
	if d.hasSelector(doc, "table.result-list") {
		return sigles.SourceAcronymFinder
	}
	if d.hasSelector(doc, ".meaning") {
		return sigles.SourceAllAcronyms
	}
	if d.hasLinkTo(doc, DefinitionsPath) || d.hasLinkTo(doc, AcronymAnnexPath) {
		return sigles.SourceUsito
	}

	return ""
}

// detectFromMetadata checks link[rel=canonical] and og:url for a known host.
func (d *Detector) detectFromMetadata(doc *goquery.Document) sigles.Source {
	var candidates []string
	if href, ok := doc.Find("link[rel='canonical']").Attr("href"); ok {
		candidates = append(candidates, href)
	}
	if content, ok := doc.Find("meta[property='og:url']").Attr("content"); ok {
		candidates = append(candidates, content)
	}

	for _, raw := range candidates {
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		host := strings.ToLower(u.Hostname())
		for _, h := range sourceHosts {
			if host == h.suffix || strings.HasSuffix(host, "."+h.suffix) {
				return h.source
			}
		}
	}
	return ""
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// hasLinkTo checks for an anchor whose decoded target contains segment.
func (d *Detector) hasLinkTo(doc *goquery.Document, segment string) bool {
	found := false
	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := decodedHref(a)
		found = ok && strings.Contains(href, segment)
		return !found
	})
	return found
}
