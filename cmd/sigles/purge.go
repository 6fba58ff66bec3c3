package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/sigles"
)

// Run executes the purge command.
func (c *PurgeCmd) Run(deps *Dependencies) error {
	if deps.Pages == nil {
		fmt.Fprintln(deps.Stderr, "error: no page cache configured. Set --cache or SIGLES_CACHE.")
		return sigles.Errorf(sigles.EINVALID, "page cache not configured")
	}

	n, err := deps.Pages.DeletePagesBefore(deps.Ctx, time.Now().Add(-c.OlderThan))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sigles.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d cached pages\n", n)
	return nil
}
