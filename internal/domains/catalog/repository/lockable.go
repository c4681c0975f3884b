package repository

import (
	"sync"

	"bookstore-catalogue/internal/domains/catalog/model"
)

// lockableBook pairs one BookRecord with the reader/writer lock that guards
// it. The lock is not re-entrant; no call path in this package takes it twice.
type lockableBook struct {
	mu  sync.RWMutex
	rec *model.BookRecord
}

func newLockableBook(b model.StockBook) *lockableBook {
	return &lockableBook{rec: model.NewBookRecord(b)}
}

// Per-record locks are totally ordered by ascending ISBN. The helpers below
// acquire a slice of records in that order and release in the reverse order;
// every caller passes a slice already sorted by resolve or allRecords, so no
// cycle can form between two operations contending for the same records.

func lockAllWrite(recs []*lockableBook) {
	for _, lb := range recs {
		lb.mu.Lock()
	}
}

func unlockAllWrite(recs []*lockableBook) {
	for i := len(recs) - 1; i >= 0; i-- {
		recs[i].mu.Unlock()
	}
}

func lockAllRead(recs []*lockableBook) {
	for _, lb := range recs {
		lb.mu.RLock()
	}
}

func unlockAllRead(recs []*lockableBook) {
	for i := len(recs) - 1; i >= 0; i-- {
		recs[i].mu.RUnlock()
	}
}
