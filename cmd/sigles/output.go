package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/sigles"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeRecords prints records in a human-readable block per record.
func writeRecords(w io.Writer, records []*sigles.Record) {
	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s [%s]\n", rec.Term, rec.Source)
		fmt.Fprintf(w, "  %s\n", rec.Definition)
		writeField(w, "category", rec.Category)
		writeField(w, "pronunciation", rec.Pronunciation)
		if rec.Grammar != nil {
			writeField(w, "grammar", grammarString(rec.Grammar))
		}
		writeField(w, "example", rec.Example)
		writeField(w, "etymology", rec.Etymology)
		writeField(w, "synonyms", strings.Join(rec.Synonyms, ", "))
		writeField(w, "url", rec.URL)
	}
}

func writeField(w io.Writer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(w, "  %s: %s\n", name, value)
}

func grammarString(g *sigles.Grammar) string {
	var parts []string
	for _, s := range []string{g.Type, g.Gender, g.Number} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
