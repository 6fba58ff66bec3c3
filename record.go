package sigles

import "strings"

// Source identifies an external dictionary queried for definitions.
type Source string

// Supported sources.
const (
	SourceUsito         Source = "usito"
	SourceAbbreviations Source = "abbreviations"
	SourceAcronymFinder Source = "acronymfinder"
	SourceAllAcronyms   Source = "allacronyms"
)

// Sources lists every source in priority order. Aggregated results are
// always reported in this order.
var Sources = []Source{
	SourceUsito,
	SourceAbbreviations,
	SourceAcronymFinder,
	SourceAllAcronyms,
}

// Priority returns the position of s in Sources, or -1 for unknown sources.
func (s Source) Priority() int {
	for i, src := range Sources {
		if src == s {
			return i
		}
	}
	return -1
}

// ParseSource returns the Source with the given name.
// Returns EINVALID if the name is not a known source.
func ParseSource(name string) (Source, error) {
	s := Source(strings.ToLower(strings.TrimSpace(name)))
	if s.Priority() < 0 {
		return "", Errorf(EINVALID, "unknown source %q", name)
	}
	return s, nil
}

// Grammatical attributes reported by Usito.
const (
	TypeNoun         = "noun"
	GenderFeminine   = "feminine"
	GenderMasculine  = "masculine"
	NumberInvariable = "invariable"
)

// Grammar holds the grammatical markers of a dictionary entry.
type Grammar struct {
	Type   string `json:"type,omitempty"`
	Gender string `json:"gender,omitempty"`
	Number string `json:"number,omitempty"`
}

// Record is one candidate definition extracted from a single source.
type Record struct {
	Source     Source `json:"source"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category,omitempty"`
	URL        string `json:"url,omitempty"`

	// Usito only.
	Pronunciation string   `json:"pronunciation,omitempty"`
	Grammar       *Grammar `json:"grammar,omitempty"`
	Etymology     string   `json:"etymology,omitempty"`
	Example       string   `json:"example,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
}

// MaxSynonyms caps the number of synonyms kept on a record.
const MaxSynonyms = 5

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "record source required")
	}
	if r.Term == "" {
		return Errorf(EINVALID, "record term required")
	}
	if strings.TrimSpace(r.Definition) == "" {
		return Errorf(EINVALID, "record definition required")
	}
	if len(r.Synonyms) > MaxSynonyms {
		return Errorf(EINVALID, "record has %d synonyms, max %d", len(r.Synonyms), MaxSynonyms)
	}
	return nil
}

// DisplayTerm returns the canonical display form of a lookup term:
// upper-cased, diacritics preserved.
func DisplayTerm(term string) string {
	return strings.ToUpper(strings.TrimSpace(term))
}

// Result is the aggregate of one lookup across all sources.
// Records holds at most one record per source, in Sources order.
type Result struct {
	Term    string    `json:"term"`
	Records []*Record `json:"records"`
}

// Record returns the record contributed by the given source, or nil.
func (r *Result) Record(source Source) *Record {
	for _, rec := range r.Records {
		if rec.Source == source {
			return rec
		}
	}
	return nil
}
