package main

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"gifsaver/pkg/reader"
	"gifsaver/pkg/storage"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved GIFs with their recorded metadata",
		Long: `List the GIFs in the output directory together with the title, author
and rating recorded in list.json. Files list.json does not describe are
shown without metadata.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{showLogo: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.NewManager(a.cfg.Output.BaseDirectory, a.cfg.Output.Extension)

			saved, err := reader.New(store, a.cfg.Output.ManifestName, a.log).ListSaved()
			if err != nil {
				if stderrors.Is(err, fs.ErrNotExist) {
					a.term.PrintWarning("Nothing saved in " + store.GetOutputDir() + " yet. Run 'gifsaver export <query>' first.")
				}
				return err
			}

			a.term.PrintInfo("Directory", store.GetOutputDir())
			if len(saved) == 0 {
				a.term.PrintWarning("No saved GIFs")
				return nil
			}

			a.term.Println(a.term.SavedTable(saved))
			a.term.PrintSuccess(fmt.Sprintf("%d saved GIFs", len(saved)))
			return nil
		},
	}
}
