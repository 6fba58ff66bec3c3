package text

import (
	"regexp"
	"strings"
)

// pass is one substitution in the cleaning pipeline.
type pass struct {
	re   *regexp.Regexp
	repl string
}

// spaceRe matches whitespace runs, including the no-break spaces French
// typography puts around guillemets and colons.
var spaceRe = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)

// cleanPasses run strictly in order: later passes assume earlier ones
// already removed their targets, and whitespace collapses last.
var cleanPasses = []pass{
	// Tooltip widget labels.
	{regexp.MustCompile(`(?i)\b(?:infobulles?|tooltips?)\b`), " "},
	// "3 Informations sur ..." up to the end of the sentence.
	{regexp.MustCompile(`\b\d+\s+Informations?\b[^.!?]*[.!?]?`), " "},
	// Cross-reference widget.
	{regexp.MustCompile(`renvoi_fleche`), " "},
	// Entry id artifact and the fragment it labels.
	{regexp.MustCompile(`entree_\d+\s*\([^)]*\)`), " "},
	// Glossary cross-reference block, may span lines.
	{regexp.MustCompile(`(?s)Consulter le glossaire.*?abréviations\.`), " "},
	// Synonym widget and everything after it.
	{regexp.MustCompile(`(?s)renvoi_syn.*$`), ""},
	// Invariance footer.
	{regexp.MustCompile(`Ce sigle est invariable en nombre\.?`), " "},
	{spaceRe, " "},
}

// Clean strips known widget artifacts and boilerplate from text scraped
// from a Usito page, collapses whitespace runs to single spaces and trims
// the result. Clean("") returns "".
func Clean(s string) string {
	if s == "" {
		return ""
	}
	for _, p := range cleanPasses {
		s = p.re.ReplaceAllString(s, p.repl)
	}
	return strings.TrimSpace(s)
}

// Squash collapses whitespace runs to single spaces and trims the result.
func Squash(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
