package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockFixture() StockBook {
	return StockBook{
		ISBN:      3044560,
		Title:     "Harry Potter and JUnit",
		Author:    "JK Unit",
		Price:     decimal.NewFromInt(10),
		NumCopies: 5,
	}
}

func TestNewBookRecord(t *testing.T) {
	rec := NewBookRecord(stockFixture())

	assert.Equal(t, int64(3044560), rec.ISBN())
	assert.Equal(t, "Harry Potter and JUnit", rec.Title())
	assert.Equal(t, "JK Unit", rec.Author())
	assert.True(t, rec.Price().Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 5, rec.NumCopies())
	assert.Equal(t, 0, rec.NumSaleMisses())
	assert.False(t, rec.EditorPick())
	assert.Equal(t, UnratedAverage, rec.AverageRating())
}

func TestBuy(t *testing.T) {
	rec := NewBookRecord(stockFixture())

	require.True(t, rec.CopiesAvailable(5))
	require.False(t, rec.CopiesAvailable(6))

	assert.True(t, rec.Buy(3))
	assert.Equal(t, 2, rec.NumCopies())

	// Asking for more than remains must leave the record untouched.
	assert.False(t, rec.Buy(3))
	assert.Equal(t, 2, rec.NumCopies())

	assert.True(t, rec.Buy(2))
	assert.Equal(t, 0, rec.NumCopies())

	assert.False(t, rec.Buy(1))
	assert.False(t, rec.Buy(0))
	assert.False(t, rec.Buy(-1))
}

func TestAddCopiesResetsSaleMisses(t *testing.T) {
	rec := NewBookRecord(stockFixture())

	rec.AddSaleMiss(2)
	rec.AddSaleMiss(1)
	require.Equal(t, 3, rec.NumSaleMisses())

	rec.AddCopies(4)
	assert.Equal(t, 9, rec.NumCopies())
	assert.Equal(t, 0, rec.NumSaleMisses())
}

func TestAddRating(t *testing.T) {
	rec := NewBookRecord(stockFixture())

	rec.AddRating(5)
	rec.AddRating(2)
	assert.Equal(t, int64(7), rec.TotalRating())
	assert.Equal(t, int64(2), rec.NumTimesRated())
	assert.InDelta(t, 3.5, rec.AverageRating(), 1e-9)

	// A zero rating still counts as a rating.
	rec.AddRating(0)
	assert.Equal(t, int64(3), rec.NumTimesRated())

	// Out-of-range values never reach the totals.
	rec.AddRating(6)
	rec.AddRating(-1)
	assert.Equal(t, int64(7), rec.TotalRating())
	assert.Equal(t, int64(3), rec.NumTimesRated())
}

func TestSetEditorPick(t *testing.T) {
	rec := NewBookRecord(stockFixture())

	rec.SetEditorPick(true)
	assert.True(t, rec.EditorPick())
	rec.SetEditorPick(false)
	assert.False(t, rec.EditorPick())
}

func TestSnapshot(t *testing.T) {
	rec := NewBookRecord(stockFixture())
	rec.AddRating(4)
	rec.SetEditorPick(true)
	require.True(t, rec.Buy(1))

	snap := rec.Snapshot()
	assert.Equal(t, int64(3044560), snap.ISBN)
	assert.Equal(t, 4, snap.NumCopies)
	assert.Equal(t, int64(4), snap.TotalRating)
	assert.Equal(t, int64(1), snap.NumTimesRated)
	assert.InDelta(t, 4.0, snap.AverageRating, 1e-9)
	assert.True(t, snap.EditorPick)

	// Snapshots are value copies: later mutations must not show through.
	rec.AddCopies(10)
	assert.Equal(t, 4, snap.NumCopies)
}

func TestClientView(t *testing.T) {
	rec := NewBookRecord(stockFixture())
	rec.AddSaleMiss(2)

	view := rec.ClientView()
	assert.Equal(t, int64(3044560), view.ISBN)
	assert.Equal(t, "Harry Potter and JUnit", view.Title)
	assert.Equal(t, "JK Unit", view.Author)
	assert.True(t, view.Price.Equal(decimal.NewFromInt(10)))
}
