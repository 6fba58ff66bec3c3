package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sigles"
	"github.com/fwojciec/sigles/text"
)

// DefinitionsPath is the path segment of Usito entry pages.
const DefinitionsPath = "/définitions/"

// minDefinitionLength is the rune count a Usito definition must exceed.
const minDefinitionLength = 20

// definitionStop ends a definition span: a quotation, a cross-reference
// arrow or the next section header.
const definitionStop = `(?:«|→|ÉTYMOLOGIE|ORTHOGRAPHE|REMARQUE|SYNONYMES?|$)`

var (
	// definitionPatterns are tried in order; the first match wins.
	definitionPatterns = []*regexp.Regexp{
		// Part of speech, optionally followed by an invariance marker.
		regexp.MustCompile(`(?s)(?:\bn\.\s?[fm]\.|\bnom (?:féminin|masculin))(?:\s*(?:\binv\.|\binvariable\b))?\s*(.+?)` + definitionStop),
		// Invariance marker alone.
		regexp.MustCompile(`(?s)(?:\binv\.|\binvariable\b)\s*(.+?)` + definitionStop),
	}

	leadingNonCapitalRe = regexp.MustCompile(`^[^\p{Lu}]+`)

	trailingBoilerplate = []*regexp.Regexp{
		regexp.MustCompile(`(?s)\*\s*a établi.*$`),
		regexp.MustCompile(`(?s)Le Centre d['’]analyse.*$`),
	}

	pronunciationRe = regexp.MustCompile(`(?i)\[[a-zàâçéèêëîïôûùüÿœæɑɔəɛɥɲŋʁʃʒøɡ\x{0303}ː.'\s-]+\]`)
	feminineRe      = regexp.MustCompile(`\bn\.\s?f\.|nom féminin`)
	masculineRe     = regexp.MustCompile(`\bn\.\s?m\.|nom masculin`)
	invariableRe    = regexp.MustCompile(`\binv\.|invariable`)
	etymologyRe     = regexp.MustCompile(`(?s)ÉTYMOLOGIE(.*?)(?:ORTHOGRAPHE|$)`)
	etymologyYearRe = regexp.MustCompile(`(?s)\d{4}.*`)
	exampleRe       = regexp.MustCompile(`(?s)«(.+?)»`)
)

// Ensure UsitoExtractor implements sigles.Extractor at compile time.
var _ sigles.Extractor = (*UsitoExtractor)(nil)

// UsitoExtractor extracts a single record from a Usito entry page: the
// definition plus pronunciation, grammar, etymology, example and synonyms.
type UsitoExtractor struct{}

// NewUsitoExtractor creates a new UsitoExtractor.
func NewUsitoExtractor() *UsitoExtractor {
	return &UsitoExtractor{}
}

// Source returns sigles.SourceUsito.
func (e *UsitoExtractor) Source() sigles.Source {
	return sigles.SourceUsito
}

// Extract returns the entry for term, or ENOTFOUND when no definition
// longer than 20 characters can be located in the main content.
func (e *UsitoExtractor) Extract(html string, term string) ([]*sigles.Record, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}

	definition, ok := usitoDefinition(flatText(region(doc, "main")))
	if !ok {
		return nil, sigles.Errorf(sigles.ENOTFOUND, "no usito definition for %q", term)
	}

	full := flatText(region(doc, "body"))
	rec := &sigles.Record{
		Source:        sigles.SourceUsito,
		Term:          sigles.DisplayTerm(term),
		Definition:    definition,
		Pronunciation: usitoPronunciation(full),
		Grammar:       usitoGrammar(full),
		Etymology:     usitoEtymology(full),
		Example:       usitoExample(full),
		Synonyms:      usitoSynonyms(doc, term),
	}
	if err := rec.Validate(); err != nil {
		return nil, sigles.Errorf(sigles.ENOTFOUND, "no usito definition for %q: %s", term, sigles.ErrorMessage(err))
	}
	return []*sigles.Record{rec}, nil
}

// usitoDefinition locates the definition span in the flat page text.
func usitoDefinition(content string) (string, bool) {
	var span string
	matched := false
	for _, re := range definitionPatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			span, matched = m[1], true
			break
		}
	}
	if !matched {
		return "", false
	}

	def := text.Clean(span)
	def = leadingNonCapitalRe.ReplaceAllString(def, "")
	for _, re := range trailingBoilerplate {
		def = re.ReplaceAllString(def, "")
	}
	def = strings.TrimSpace(def)

	if utf8.RuneCountInString(def) <= minDefinitionLength {
		return "", false
	}
	return def, true
}

func usitoPronunciation(full string) string {
	return pronunciationRe.FindString(full)
}

// usitoGrammar reads the gender and invariance markers. Feminine wins
// over masculine when both appear.
func usitoGrammar(full string) *sigles.Grammar {
	var g sigles.Grammar
	switch {
	case feminineRe.MatchString(full):
		g.Type, g.Gender = sigles.TypeNoun, sigles.GenderFeminine
	case masculineRe.MatchString(full):
		g.Type, g.Gender = sigles.TypeNoun, sigles.GenderMasculine
	}
	if invariableRe.MatchString(full) {
		g.Number = sigles.NumberInvariable
	}
	if g == (sigles.Grammar{}) {
		return nil
	}
	return &g
}

// usitoEtymology returns the etymology section from its first year on.
// The year must appear before the next ORTHOGRAPHE header.
func usitoEtymology(full string) string {
	m := etymologyRe.FindStringSubmatch(full)
	if m == nil {
		return ""
	}
	return text.Squash(etymologyYearRe.FindString(m[1]))
}

func usitoExample(full string) string {
	m := exampleRe.FindStringSubmatch(full)
	if m == nil {
		return ""
	}
	return text.Squash(m[1])
}

// usitoSynonyms collects the labels of entry links that sit next to a
// cross-reference arrow or a "synonyme" label, in document order.
func usitoSynonyms(doc *goquery.Document, term string) []string {
	var synonyms []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := decodedHref(a)
		if !ok || !strings.Contains(href, DefinitionsPath) {
			return true
		}
		around := flatText(a.Parent())
		if !strings.Contains(around, "→") && !strings.Contains(strings.ToLower(around), "synonyme") {
			return true
		}

		label := squashText(a)
		if label == "" || text.EqualNormalized(label, term) {
			return true
		}
		key := strings.ToLower(label)
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
		synonyms = append(synonyms, label)
		return len(synonyms) < sigles.MaxSynonyms
	})

	return synonyms
}
