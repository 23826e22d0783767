package bookdeal

import (
	"log/slog"
	"slices"

	"github.com/google/uuid"
)

// Registry owns every Author, Book and Contract created through it, in
// creation order. Nothing is ever removed. A Registry is not safe for
// concurrent use.
type Registry struct {
	authors   []*Author
	books     []*Book
	contracts []*Contract

	logger *slog.Logger
}

type Option func(*Registry)

// WithLogger sets the logger used for registration events. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(registry *Registry) {
		if logger != nil {
			registry.logger = logger
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	registry := &Registry{
		authors:   []*Author{},
		books:     []*Book{},
		contracts: []*Contract{},
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(registry)
	}

	return registry
}

func (registry *Registry) NewAuthor(name string) *Author {
	author := &Author{
		id:       uuid.New(),
		name:     name,
		registry: registry,
	}
	registry.authors = append(registry.authors, author)
	registry.logger.Debug("registered author", "author_id", author.id.String(), "name", name)

	return author
}

func (registry *Registry) NewBook(title string) *Book {
	book := &Book{
		id:       uuid.New(),
		title:    title,
		registry: registry,
	}
	registry.books = append(registry.books, book)
	registry.logger.Debug("registered book", "book_id", book.id.String(), "title", title)

	return book
}

// NewContract constructs and registers a contract. It does not check for an
// existing contract between the same author and book; use
// Author.SignContract for that.
func (registry *Registry) NewContract(
	author *Author,
	book *Book,
	date string,
	royalties int,
) (*Contract, error) {
	if err := registry.checkAuthor(author); err != nil {
		return nil, err
	}
	if err := registry.checkBook(book); err != nil {
		return nil, err
	}

	contract := &Contract{
		id:        uuid.New(),
		author:    author,
		book:      book,
		date:      date,
		royalties: royalties,
	}
	registry.contracts = append(registry.contracts, contract)
	registry.logger.Debug("registered contract",
		"contract_id", contract.id.String(),
		"author", author.name,
		"book", book.title,
		"date", date,
		"royalties", royalties,
	)

	return contract, nil
}

func (registry *Registry) Authors() []*Author { return slices.Clone(registry.authors) }

func (registry *Registry) Books() []*Book { return slices.Clone(registry.books) }

func (registry *Registry) Contracts() []*Contract { return slices.Clone(registry.contracts) }

// ContractsByDate returns every contract signed on date, in creation order.
func (registry *Registry) ContractsByDate(date string) []*Contract {
	return registry.Query().Where(OnDate(date)).Collect()
}

func (registry *Registry) Query() ContractQuery {
	return newContractQuery(registry)
}

func (registry *Registry) checkAuthor(author *Author) error {
	if author == nil {
		return &ValidationError{Field: "author", Reason: "must be an Author"}
	}
	if author.registry != registry {
		return &ValidationError{Field: "author", Reason: "belongs to another registry"}
	}

	return nil
}

func (registry *Registry) checkBook(book *Book) error {
	if book == nil {
		return &ValidationError{Field: "book", Reason: "must be a Book"}
	}
	if book.registry != registry {
		return &ValidationError{Field: "book", Reason: "belongs to another registry"}
	}

	return nil
}
