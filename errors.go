package bookdeal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a contract is built from an argument
	// of the wrong kind, such as a nil author or a book from another registry.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicateContract is returned when an author signs a second contract for the same book.
	ErrDuplicateContract = errors.New("duplicate contract")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, err.Field, err.Reason)
}

func (err *ValidationError) Unwrap() error { return ErrInvalidArgument }

type DuplicateContractError struct {
	Author string
	Book   string
}

func (err *DuplicateContractError) Error() string {
	return fmt.Sprintf("%s: %s has already signed a contract for the book '%s'", ErrDuplicateContract, err.Author, err.Book)
}

func (err *DuplicateContractError) Unwrap() error { return ErrDuplicateContract }
