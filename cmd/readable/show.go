package main

import (
	"fmt"

	"github.com/fwojciec/readable"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	article, err := deps.Articles.FindArticleByID(deps.Ctx, c.ID)
	if err != nil {
		if readable.ErrorCode(err) == readable.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'readable list' to see saved articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		}
		return err
	}

	if article.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", article.Title)
	}
	fmt.Fprintf(deps.Stdout, "Source: %s\nExtracted: %s\n\n", article.SourceURL, article.ExtractedAt.Format("2006-01-02"))
	fmt.Fprintln(deps.Stdout, article.Content)

	return nil
}
