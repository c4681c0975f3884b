package repository

import (
	"context"

	"bookstore-catalogue/internal/domains/catalog/model"
)

// Catalogue is the shared book collection serviced concurrently by the
// purchase front-end and the inventory-manager back-end. Implementations must
// be safe for arbitrary concurrent use.
type Catalogue interface {
	// Structural operations. These exclude every other operation while they
	// run and are all-or-nothing over their input.
	AddBooks(ctx context.Context, books []model.StockBook) error
	RemoveBooks(ctx context.Context, isbns []int64) error
	RemoveAllBooks(ctx context.Context) error

	// Stock mutations.
	AddCopies(ctx context.Context, copies []model.BookCopy) error
	BuyBooks(ctx context.Context, copies []model.BookCopy) error
	RateBooks(ctx context.Context, ratings []model.BookRating) error
	UpdateEditorPicks(ctx context.Context, picks []model.BookEditorPick) error

	// Reads.
	GetBooks(ctx context.Context) ([]model.StockBook, error)
	GetBooksByISBN(ctx context.Context, isbns []int64) ([]model.StockBook, error)
	GetBooksForClients(ctx context.Context, isbns []int64) ([]model.Book, error)
	GetEditorPicks(ctx context.Context, count int) ([]model.Book, error)
	GetTopRatedBooks(ctx context.Context, count int) ([]model.Book, error)
	GetBooksInDemand(ctx context.Context) ([]model.StockBook, error)
}
