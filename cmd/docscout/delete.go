package main

import (
	"fmt"

	"github.com/fwojciec/docscout"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Results.DeleteResult(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docscout.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted result %s\n", c.ID)
	return nil
}
