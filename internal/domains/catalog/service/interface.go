package service

import (
	"context"

	"bookstore-catalogue/internal/domains/catalog/model"
)

// ClientAPI is the purchase capability exposed to the bookstore front-end.
type ClientAPI interface {
	BuyBooks(ctx context.Context, copies []model.BookCopy) error
	RateBooks(ctx context.Context, ratings []model.BookRating) error
	GetBooksForClients(ctx context.Context, isbns []int64) ([]model.Book, error)
	GetEditorPicks(ctx context.Context, count int) ([]model.Book, error)
	GetTopRatedBooks(ctx context.Context, count int) ([]model.Book, error)
}

// StockAPI is the stock-management capability exposed to inventory managers.
type StockAPI interface {
	AddBooks(ctx context.Context, books []model.StockBook) error
	AddCopies(ctx context.Context, copies []model.BookCopy) error
	UpdateEditorPicks(ctx context.Context, picks []model.BookEditorPick) error
	GetBooks(ctx context.Context) ([]model.StockBook, error)
	GetBooksByISBN(ctx context.Context, isbns []int64) ([]model.StockBook, error)
	GetBooksInDemand(ctx context.Context) ([]model.StockBook, error)
	RemoveBooks(ctx context.Context, isbns []int64) error
	RemoveAllBooks(ctx context.Context) error
}
