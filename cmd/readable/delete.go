package main

import (
	"fmt"

	"github.com/fwojciec/readable"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return readable.Errorf(readable.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Articles.DeleteArticle(deps.Ctx, c.ID); err != nil {
		if readable.ErrorCode(err) == readable.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'readable list' to see saved articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted article %q\n", c.ID)
	return nil
}
