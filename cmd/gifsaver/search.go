package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search GIPHY and print the results sorted by rating",
		Long: `Search GIPHY and print the results sorted by rating.

Without a query, "` + defaultQuery + `" is searched.`,
		Example: `  # Print the default 30 results for "cat"
  gifsaver search

  # Multi-word queries don't need quoting
  gifsaver search happy dance --limit 10`,
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{showLogo: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := queryFrom(args)

			results, err := a.newClient().Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			a.term.PrintInfo("Query", query)
			if len(results) == 0 {
				a.term.PrintWarning("No results")
				return nil
			}

			a.term.Println(a.term.ResultsTable(results))
			a.term.PrintSuccess(fmt.Sprintf("%d results", len(results)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&a.limit, "limit", "l", 0, "number of results to request (1-50, default 30)")

	return cmd
}
