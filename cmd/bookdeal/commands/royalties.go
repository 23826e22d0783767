package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func royaltiesCmd(state *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "royalties",
		Short: "Print total royalties per author",
		RunE: func(cmd *cobra.Command, args []string) error {
			views := royaltyViews(state.registry.Authors())

			out := cmd.OutOrStdout()
			if state.cfg.Output == outputJSON {
				return writeJSON(out, views)
			}

			for _, v := range views {
				fmt.Fprintf(out, "Total royalties for %s: %d%%\n", v.Author, v.Royalties)
			}
			return nil
		},
	}
	return cmd
}
