package main

import (
	"fmt"

	sigleshttp "github.com/fwojciec/sigles/http"
)

// Run executes the serve command. It blocks until the context is done.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := sigleshttp.NewServer(deps.Lookup, deps.Logger)
	server.Addr = c.Addr

	if err := server.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", server.URL())

	<-deps.Ctx.Done()
	return server.Close()
}
