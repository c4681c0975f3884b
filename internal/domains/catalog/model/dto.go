package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// MaxRating is the highest rating a client may give a book.
const MaxRating = 5

// ========================================
// BOUNDARY VALUE TYPES
// ========================================
// Immutable descriptors passed across the catalogue boundary. They carry no
// locks; synchronisation lives entirely in the catalogue.

// StockBook is the full attribute set of a book: input to AddBooks, output of
// the stock-manager reads.
type StockBook struct {
	ISBN          int64           `json:"isbn"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Price         decimal.Decimal `json:"price"`
	NumCopies     int             `json:"num_copies"`
	NumSaleMisses int             `json:"num_sale_misses"`
	TotalRating   int64           `json:"total_rating"`
	NumTimesRated int64           `json:"num_times_rated"`
	AverageRating float64         `json:"average_rating"`
	EditorPick    bool            `json:"editor_pick"`
}

func (b StockBook) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Min(int64(1)).Error("isbn must be a positive integer"),
		),
		validation.Field(&b.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&b.Author,
			validation.Required.Error("author is required"),
		),
		validation.Field(&b.Price,
			validation.By(priceNotNegative),
		),
		validation.Field(&b.NumCopies,
			validation.Min(0).Error("num_copies cannot be negative"),
		),
	)
}

// Book is the client-visible projection returned to the purchase surface.
type Book struct {
	ISBN   int64           `json:"isbn"`
	Title  string          `json:"title"`
	Author string          `json:"author"`
	Price  decimal.Decimal `json:"price"`
}

// BookCopy asks for NumCopies copies of one book, either to buy or to put in
// stock.
type BookCopy struct {
	ISBN      int64 `json:"isbn"`
	NumCopies int   `json:"num_copies"`
}

func (bc BookCopy) Validate() error {
	return validation.ValidateStruct(&bc,
		validation.Field(&bc.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Min(int64(1)).Error("isbn must be a positive integer"),
		),
		validation.Field(&bc.NumCopies,
			validation.Required.Error("num_copies is required"),
			validation.Min(1).Error("num_copies must be at least 1"),
		),
	)
}

// BookEditorPick sets or clears the editorial flag of one book.
type BookEditorPick struct {
	ISBN       int64 `json:"isbn"`
	EditorPick bool  `json:"editor_pick"`
}

func (bp BookEditorPick) Validate() error {
	return validation.ValidateStruct(&bp,
		validation.Field(&bp.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Min(int64(1)).Error("isbn must be a positive integer"),
		),
	)
}

// BookRating carries one client rating for one book.
type BookRating struct {
	ISBN   int64 `json:"isbn"`
	Rating int   `json:"rating"`
}

func (br BookRating) Validate() error {
	return validation.ValidateStruct(&br,
		validation.Field(&br.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Min(int64(1)).Error("isbn must be a positive integer"),
		),
		validation.Field(&br.Rating,
			validation.Min(0).Error("rating cannot be negative"),
			validation.Max(MaxRating).Error("rating cannot exceed 5"),
		),
	)
}

func priceNotNegative(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok {
		return ErrNegativePrice
	}
	if price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
