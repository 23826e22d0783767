package commands

import (
	"github.com/spf13/cobra"

	"pollex.nl/bookdeal"
)

// app is what every subcommand runs against, built once the flags are parsed.
type app struct {
	cfg      Config
	registry *bookdeal.Registry
}

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	var (
		output string
		state  = &app{}
	)

	root := &cobra.Command{
		Use:          "bookdeal",
		Short:        "Explore author and book contracts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			registry := bookdeal.NewRegistry(bookdeal.WithLogger(cfg.logger(cmd.ErrOrStderr())))
			if err := seed(registry); err != nil {
				return err
			}

			state.cfg = cfg
			state.registry = registry
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&output, "output", "o", outputText, "output format (text|json)")

	root.AddCommand(
		demoCmd(state),
		contractsCmd(state),
		royaltiesCmd(state),
		authorsCmd(state),
	)
	return root
}
