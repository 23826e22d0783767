package commands

import (
	"fmt"

	"pollex.nl/bookdeal"
)

type signing struct {
	author    string
	book      string
	date      string
	royalties int
}

var (
	seedAuthors = []string{"Jane Austen", "Mark Twain"}
	seedBooks   = []string{"Pride and Prejudice", "The Adventures of Huckleberry Finn"}
	seedSigned  = []signing{
		{"Jane Austen", "Pride and Prejudice", "2024-11-09", 10},
		{"Jane Austen", "The Adventures of Huckleberry Finn", "2024-11-10", 12},
		{"Mark Twain", "The Adventures of Huckleberry Finn", "2024-11-09", 15},
	}
)

// seed fills registry with the sample authors, books and contracts.
func seed(registry *bookdeal.Registry) error {
	authors := map[string]*bookdeal.Author{}
	for _, name := range seedAuthors {
		authors[name] = registry.NewAuthor(name)
	}

	books := map[string]*bookdeal.Book{}
	for _, title := range seedBooks {
		books[title] = registry.NewBook(title)
	}

	for _, s := range seedSigned {
		if _, err := authors[s.author].SignContract(books[s.book], s.date, s.royalties); err != nil {
			return fmt.Errorf("seed %s / %s: %w", s.author, s.book, err)
		}
	}

	return nil
}
