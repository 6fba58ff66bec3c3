package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/sigles"
)

// Run executes the extract command against a page saved on disk.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	b, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	html := string(b)

	var extractor sigles.Extractor
	if c.Source != "" {
		source, err := sigles.ParseSource(c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sigles.ErrorMessage(err))
			return err
		}
		extractor = deps.Registry.Get(source)
	} else {
		extractor = deps.Registry.GetForHTML(html)
	}
	if extractor == nil {
		fmt.Fprintln(deps.Stderr, "error: cannot tell which source the page comes from. Use --source.")
		return sigles.Errorf(sigles.EINVALID, "unknown page source")
	}

	records, err := extractor.Extract(html, c.Term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sigles.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps.Stdout, records)
	}
	writeRecords(deps.Stdout, records)
	return nil
}
