package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const (
	demoDate  = "2024-11-09"
	demoTitle = "The Adventures of Huckleberry Finn"
)

type demoView struct {
	Date        string            `json:"date"`
	Contracts   []contractView    `json:"contracts"`
	Royalties   []royaltyView     `json:"royalties"`
	BookAuthors []bookAuthorsView `json:"book_authors"`
}

func demoCmd(state *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the sample contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := demoView{
				Date:        demoDate,
				Contracts:   contractViews(state.registry.ContractsByDate(demoDate)),
				Royalties:   royaltyViews(state.registry.Authors()),
				BookAuthors: []bookAuthorsView{},
			}
			for _, book := range state.registry.Books() {
				if book.Title() == demoTitle {
					view.BookAuthors = append(view.BookAuthors, bookAuthorsViewOf(book))
				}
			}

			out := cmd.OutOrStdout()
			if state.cfg.Output == outputJSON {
				return writeJSON(out, view)
			}

			fmt.Fprintf(out, "Contracts signed on %s:\n", view.Date)
			for _, c := range view.Contracts {
				fmt.Fprintf(out, "- %s for '%s'\n", c.Author, c.Book)
			}
			for _, r := range view.Royalties {
				fmt.Fprintf(out, "Total royalties for %s: %d%%\n", r.Author, r.Royalties)
			}
			for _, b := range view.BookAuthors {
				fmt.Fprintf(out, "Authors of '%s': %s\n", b.Book, strings.Join(b.Authors, ", "))
			}
			return nil
		},
	}
	return cmd
}
