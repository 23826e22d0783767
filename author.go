package bookdeal

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Author is a writer known to a Registry. Names are not unique; two authors
// are the same only if they are the same pointer.
type Author struct {
	id       uuid.UUID
	name     string
	registry *Registry
}

func (author *Author) ID() uuid.UUID { return author.id }

func (author *Author) Name() string { return author.name }

// Contracts returns the contracts signed by author, in the order they were registered.
func (author *Author) Contracts() []*Contract {
	if author.registry == nil {
		return []*Contract{}
	}

	return author.registry.Query().Where(ByAuthor(author)).Collect()
}

func (author *Author) Books() []*Book {
	return Through(author.Contracts(), func(c *Contract) *Book { return c.book })
}

// SignContract registers a contract between author and book. An author may
// hold at most one contract per book.
func (author *Author) SignContract(book *Book, date string, royalties int) (*Contract, error) {
	registry := author.registry
	if registry == nil {
		return nil, &ValidationError{Field: "author", Reason: "is not registered"}
	}

	if err := registry.checkBook(book); err != nil {
		return nil, err
	}

	if registry.Query().Where(ByAuthor(author), ByBook(book)).Exists() {
		registry.logger.Warn("rejected duplicate contract",
			"author_id", author.id.String(),
			"book_id", book.id.String(),
		)
		return nil, &DuplicateContractError{Author: author.name, Book: book.title}
	}

	return registry.NewContract(author, book, date, royalties)
}

// TotalRoyalties sums the royalties of every contract author has signed.
func (author *Author) TotalRoyalties() int {
	return lo.SumBy(author.Contracts(), func(c *Contract) int { return c.royalties })
}
