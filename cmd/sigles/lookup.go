package main

import (
	"fmt"

	"github.com/fwojciec/sigles"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	var (
		records []*sigles.Record
		out     any
	)

	switch {
	case c.Source != "":
		source, err := sigles.ParseSource(c.Source)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sigles.ErrorMessage(err))
			return err
		}
		records, err = deps.Lookup.LookupSource(deps.Ctx, source, c.Term)
		if err != nil {
			return c.fail(deps, err)
		}
		out = records

	case c.All:
		result, err := deps.Lookup.LookupAll(deps.Ctx, c.Term)
		if err != nil {
			return c.fail(deps, err)
		}
		records, out = result.Records, result

	default:
		rec, err := deps.Lookup.LookupUsito(deps.Ctx, c.Term)
		if err != nil {
			return c.fail(deps, err)
		}
		records, out = []*sigles.Record{rec}, rec
	}

	if c.JSON {
		return writeJSON(deps.Stdout, out)
	}
	writeRecords(deps.Stdout, records)
	return nil
}

func (c *LookupCmd) fail(deps *Dependencies, err error) error {
	if sigles.ErrorCode(err) == sigles.ENOTFOUND && c.Source == "" && !c.All {
		fmt.Fprintf(deps.Stderr, "No Usito definition for %q. Try 'sigles lookup --all %s'.\n", c.Term, c.Term)
		return err
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", sigles.ErrorMessage(err))
	return err
}
