package model

import (
	"errors"
	"fmt"
)

// ===================================
// DOMAIN ERRORS
// ===================================

var (
	// ErrNilInput is returned when a required input set is absent.
	ErrNilInput = errors.New("input set must not be nil")

	// ErrInvalidISBN is returned when an ISBN is not a positive integer.
	ErrInvalidISBN = errors.New("isbn must be a positive integer")

	// ErrEmptyTitle is returned when a book is added without a title.
	ErrEmptyTitle = errors.New("title must not be empty")

	// ErrEmptyAuthor is returned when a book is added without an author.
	ErrEmptyAuthor = errors.New("author must not be empty")

	// ErrNegativePrice is returned when a book is added with a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNegativeCopies is returned when a book is added with negative stock.
	ErrNegativeCopies = errors.New("num_copies cannot be negative")

	// ErrDuplicateISBN is returned when inserting an ISBN already present.
	ErrDuplicateISBN = errors.New("isbn already present in catalogue")

	// ErrBookNotFound is returned when referencing an absent ISBN.
	ErrBookNotFound = errors.New("book not found in catalogue")

	// ErrInvalidCopyCount is returned when a copy delta is below 1.
	ErrInvalidCopyCount = errors.New("num_copies must be at least 1")

	// ErrInvalidRating is returned when a rating falls outside [0, 5].
	ErrInvalidRating = errors.New("rating must be between 0 and 5")

	// ErrOutOfStock is returned when a purchase asks for more copies than
	// are available for some book in the request.
	ErrOutOfStock = errors.New("insufficient copies in stock")

	// ErrInvalidResultCount is returned when a query asks for a negative
	// number of results.
	ErrInvalidResultCount = errors.New("result count cannot be negative")
)

// ===================================
// ERROR HELPERS
// ===================================

// NewInvalidISBNError annotates ErrInvalidISBN with the offending value.
func NewInvalidISBNError(isbn int64) error {
	return fmt.Errorf("%w: isbn=%d", ErrInvalidISBN, isbn)
}

// NewDuplicateISBNError annotates ErrDuplicateISBN with the colliding key.
func NewDuplicateISBNError(isbn int64) error {
	return fmt.Errorf("%w: isbn=%d", ErrDuplicateISBN, isbn)
}

// NewBookNotFoundError annotates ErrBookNotFound with the missing key.
func NewBookNotFoundError(isbn int64) error {
	return fmt.Errorf("%w: isbn=%d", ErrBookNotFound, isbn)
}

// NewInvalidCopyCountError annotates ErrInvalidCopyCount with the delta.
func NewInvalidCopyCountError(isbn int64, numCopies int) error {
	return fmt.Errorf("%w: isbn=%d, num_copies=%d", ErrInvalidCopyCount, isbn, numCopies)
}

// NewInvalidRatingError annotates ErrInvalidRating with the rating given.
func NewInvalidRatingError(isbn int64, rating int) error {
	return fmt.Errorf("%w: isbn=%d, rating=%d", ErrInvalidRating, isbn, rating)
}

// NewOutOfStockError creates an out-of-stock error with shortage details.
func NewOutOfStockError(isbn int64, requested, available int) error {
	return fmt.Errorf("%w: isbn=%d, requested=%d, available=%d", ErrOutOfStock, isbn, requested, available)
}

// IsNotFoundError checks if err is a missing-book error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrBookNotFound)
}

// IsDuplicateError checks if err is a duplicate-insert error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateISBN)
}

// IsOutOfStockError checks if err is an out-of-stock error.
func IsOutOfStockError(err error) bool {
	return errors.Is(err, ErrOutOfStock)
}

// IsValidationError checks if err stems from malformed input rather than
// catalogue state.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNilInput) ||
		errors.Is(err, ErrInvalidISBN) ||
		errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrEmptyAuthor) ||
		errors.Is(err, ErrNegativePrice) ||
		errors.Is(err, ErrNegativeCopies) ||
		errors.Is(err, ErrInvalidCopyCount) ||
		errors.Is(err, ErrInvalidRating) ||
		errors.Is(err, ErrInvalidResultCount)
}
