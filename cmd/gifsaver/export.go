package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"gifsaver/pkg/exporter"
	"gifsaver/pkg/storage"
	"gifsaver/pkg/ui"
)

func newExportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [query]",
		Short: "Save the top results of a search to the output directory",
		Long: `Save the top results of a search as 0.gif, 1.gif, ... and write list.json
with the title, author and rating of each file. Without a query, "` + defaultQuery + `"
is exported.

The first failed download stops the export. Files saved before the failure
are kept, but list.json is only written when every download succeeded.`,
		Example: `  # Save the ten best-rated cat GIFs to ./saved
  gifsaver export

  # Save five results somewhere else
  gifsaver export space cat --count 5 --output ./space`,
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{showLogo: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := queryFrom(args)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			exp := exporter.New(
				a.newClient(),
				a.newDownloader(),
				storage.NewManager(a.cfg.Output.BaseDirectory, a.cfg.Output.Extension),
				exporter.WithProgress(ui.NewExportProgress(a.term)),
				exporter.WithDefaultCount(a.cfg.Export.Count),
				exporter.WithManifestName(a.cfg.Output.ManifestName),
				exporter.WithLogger(a.log),
			)

			_, err := exp.ExportTop(ctx, query, 0)
			return err
		},
	}

	cmd.Flags().IntVarP(&a.count, "count", "n", 0, "number of GIFs to save (default 10)")

	return cmd
}
