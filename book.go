package bookdeal

import "github.com/google/uuid"

// Book is a published work known to a Registry. Titles are not unique.
type Book struct {
	id       uuid.UUID
	title    string
	registry *Registry
}

func (book *Book) ID() uuid.UUID { return book.id }

func (book *Book) Title() string { return book.title }

func (book *Book) Contracts() []*Contract {
	if book.registry == nil {
		return []*Contract{}
	}

	return book.registry.Query().Where(ByBook(book)).Collect()
}

// Authors returns the author of each of the book's contracts, in contract order.
func (book *Book) Authors() []*Author {
	return Through(book.Contracts(), func(c *Contract) *Author { return c.author })
}
