package commands

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"pollex.nl/bookdeal"
)

func authorsCmd(state *app) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "authors",
		Short: "Print the authors of every book with the given title",
		RunE: func(cmd *cobra.Command, args []string) error {
			books := lo.Filter(state.registry.Books(), func(b *bookdeal.Book, _ int) bool {
				return b.Title() == title
			})
			if len(books) == 0 {
				return fmt.Errorf("no book titled %q", title)
			}

			views := lo.Map(books, func(b *bookdeal.Book, _ int) bookAuthorsView { return bookAuthorsViewOf(b) })

			out := cmd.OutOrStdout()
			if state.cfg.Output == outputJSON {
				return writeJSON(out, views)
			}

			for _, v := range views {
				fmt.Fprintf(out, "Authors of '%s': %s\n", v.Book, strings.Join(v.Authors, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "book title")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
