package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func contractsCmd(state *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "List contracts, optionally only those signed on a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			contracts := state.registry.Contracts()
			if cmd.Flags().Changed("date") {
				contracts = state.registry.ContractsByDate(date)
			}

			out := cmd.OutOrStdout()
			if state.cfg.Output == outputJSON {
				return writeJSON(out, contractViews(contracts))
			}

			for _, c := range contracts {
				fmt.Fprintf(out, "- %s for '%s' on %s (%d%%)\n", c.Author().Name(), c.Book().Title(), c.Date(), c.Royalties())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "only contracts signed on this date")
	return cmd
}
