package main

import (
	"fmt"

	"github.com/fwojciec/readable"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	articles, err := deps.Articles.FindArticles(deps.Ctx, readable.ArticleFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'readable extract --save' to create one.")
		return nil
	}

	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", a.ID, title, a.SourceURL)
	}

	return nil
}
