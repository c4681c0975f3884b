package model

import (
	"github.com/shopspring/decimal"
)

// UnratedAverage is the average rating reported for a book that has never
// been rated.
const UnratedAverage float64 = -1

// BookRecord is the catalogue's mutable entry for a single book. The record
// performs no synchronisation of its own: every caller must already hold the
// appropriate lock on the lockable wrapper that owns it.
type BookRecord struct {
	isbn   int64
	title  string
	author string
	price  decimal.Decimal

	numCopies     int
	numSaleMisses int
	totalRating   int64
	numTimesRated int64
	editorPick    bool
}

// NewBookRecord builds a record from an already validated stock descriptor.
func NewBookRecord(b StockBook) *BookRecord {
	return &BookRecord{
		isbn:       b.ISBN,
		title:      b.Title,
		author:     b.Author,
		price:      b.Price,
		numCopies:  b.NumCopies,
		editorPick: b.EditorPick,
	}
}

func (r *BookRecord) ISBN() int64            { return r.isbn }
func (r *BookRecord) Title() string          { return r.title }
func (r *BookRecord) Author() string         { return r.author }
func (r *BookRecord) Price() decimal.Decimal { return r.price }
func (r *BookRecord) NumCopies() int         { return r.numCopies }
func (r *BookRecord) NumSaleMisses() int     { return r.numSaleMisses }
func (r *BookRecord) TotalRating() int64     { return r.totalRating }
func (r *BookRecord) NumTimesRated() int64   { return r.numTimesRated }
func (r *BookRecord) EditorPick() bool       { return r.editorPick }

// AverageRating returns totalRating/numTimesRated, or UnratedAverage when the
// book has never been rated.
func (r *BookRecord) AverageRating() float64 {
	if r.numTimesRated == 0 {
		return UnratedAverage
	}
	return float64(r.totalRating) / float64(r.numTimesRated)
}

// CopiesAvailable reports whether at least n copies are in stock.
func (r *BookRecord) CopiesAvailable(n int) bool {
	return r.numCopies >= n
}

// Buy removes n copies from stock. It returns false and leaves the record
// untouched when n < 1 or fewer than n copies are available.
func (r *BookRecord) Buy(n int) bool {
	if n < 1 || !r.CopiesAvailable(n) {
		return false
	}
	r.numCopies -= n
	return true
}

// AddCopies puts n more copies in stock. A restock clears the sale-miss
// counter: the shortage it measured has been addressed.
func (r *BookRecord) AddCopies(n int) {
	if n < 1 {
		return
	}
	r.numCopies += n
	r.numSaleMisses = 0
}

// AddSaleMiss records n copies that a client wanted but could not buy.
func (r *BookRecord) AddSaleMiss(n int) {
	if n < 1 {
		return
	}
	r.numSaleMisses += n
}

// AddRating accumulates one rating in [0, MaxRating]. Out-of-range values are
// ignored; the catalogue rejects them before ever reaching the record.
func (r *BookRecord) AddRating(rating int) {
	if rating < 0 || rating > MaxRating {
		return
	}
	r.totalRating += int64(rating)
	r.numTimesRated++
}

// SetEditorPick sets the editorial curation flag.
func (r *BookRecord) SetEditorPick(pick bool) {
	r.editorPick = pick
}

// Snapshot exports the full stock-manager view as an immutable value copy.
func (r *BookRecord) Snapshot() StockBook {
	return StockBook{
		ISBN:          r.isbn,
		Title:         r.title,
		Author:        r.author,
		Price:         r.price,
		NumCopies:     r.numCopies,
		NumSaleMisses: r.numSaleMisses,
		TotalRating:   r.totalRating,
		NumTimesRated: r.numTimesRated,
		AverageRating: r.AverageRating(),
		EditorPick:    r.editorPick,
	}
}

// ClientView exports the purchase-side projection.
func (r *BookRecord) ClientView() Book {
	return Book{
		ISBN:   r.isbn,
		Title:  r.title,
		Author: r.author,
		Price:  r.price,
	}
}
