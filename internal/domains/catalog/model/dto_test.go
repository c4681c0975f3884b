package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStockBookValidate(t *testing.T) {
	valid := StockBook{
		ISBN:      1,
		Title:     "T",
		Author:    "A",
		Price:     decimal.NewFromFloat(9.99),
		NumCopies: 0,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*StockBook)
	}{
		{"zero isbn", func(b *StockBook) { b.ISBN = 0 }},
		{"negative isbn", func(b *StockBook) { b.ISBN = -7 }},
		{"empty title", func(b *StockBook) { b.Title = "" }},
		{"empty author", func(b *StockBook) { b.Author = "" }},
		{"negative price", func(b *StockBook) { b.Price = decimal.NewFromInt(-1) }},
		{"negative copies", func(b *StockBook) { b.NumCopies = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			assert.Error(t, b.Validate())
		})
	}
}

func TestBookCopyValidate(t *testing.T) {
	assert.NoError(t, BookCopy{ISBN: 1, NumCopies: 1}.Validate())
	assert.Error(t, BookCopy{ISBN: 0, NumCopies: 1}.Validate())
	assert.Error(t, BookCopy{ISBN: -1, NumCopies: 1}.Validate())
	assert.Error(t, BookCopy{ISBN: 1, NumCopies: 0}.Validate())
	assert.Error(t, BookCopy{ISBN: 1, NumCopies: -2}.Validate())
}

func TestBookRatingValidate(t *testing.T) {
	assert.NoError(t, BookRating{ISBN: 1, Rating: 0}.Validate())
	assert.NoError(t, BookRating{ISBN: 1, Rating: 5}.Validate())
	assert.Error(t, BookRating{ISBN: 1, Rating: -1}.Validate())
	assert.Error(t, BookRating{ISBN: 1, Rating: 6}.Validate())
	assert.Error(t, BookRating{ISBN: 0, Rating: 3}.Validate())
}

func TestBookEditorPickValidate(t *testing.T) {
	assert.NoError(t, BookEditorPick{ISBN: 1, EditorPick: true}.Validate())
	assert.NoError(t, BookEditorPick{ISBN: 1, EditorPick: false}.Validate())
	assert.Error(t, BookEditorPick{ISBN: 0}.Validate())
}
