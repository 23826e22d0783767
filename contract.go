package bookdeal

import "github.com/google/uuid"

// Contract links one Author to one Book. It cannot be changed once registered.
type Contract struct {
	id        uuid.UUID
	author    *Author
	book      *Book
	date      string
	royalties int
}

func (contract *Contract) ID() uuid.UUID { return contract.id }

func (contract *Contract) Author() *Author { return contract.author }

func (contract *Contract) Book() *Book { return contract.book }

// Date is the signing date as given. It is only ever compared for equality.
func (contract *Contract) Date() string { return contract.date }

// Royalties is not range checked; zero and negative values are kept as is.
func (contract *Contract) Royalties() int { return contract.royalties }
