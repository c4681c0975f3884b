package repository

import (
	"context"
	"math/rand"
	"slices"
	"sort"
	"sync"

	"bookstore-catalogue/internal/domains/catalog/model"
)

// InMemoryCatalogue owns the mapping from ISBN to lockable record behind a
// catalogue-level reader/writer lock.
//
// Two locking modes cover every operation:
//
//   - Mode A (structural): take the catalogue write lock. Nothing else can be
//     in flight, so per-record locks are unnecessary.
//   - Mode B (per-record): take the catalogue read lock, which freezes the
//     key set, then take the per-record locks of exactly the records touched,
//     in ascending ISBN order, releasing in reverse.
//
// No call path takes a per-record lock without holding the catalogue read
// lock, and none takes the catalogue write lock while holding any per-record
// lock, so the two levels cannot deadlock against each other.
type InMemoryCatalogue struct {
	mu    sync.RWMutex
	books map[int64]*lockableBook
}

var _ Catalogue = (*InMemoryCatalogue)(nil)

// NewInMemoryCatalogue creates an empty catalogue.
func NewInMemoryCatalogue() *InMemoryCatalogue {
	return &InMemoryCatalogue{
		books: make(map[int64]*lockableBook),
	}
}

// ========================================
// MODE A — STRUCTURAL OPERATIONS
// ========================================

// AddBooks validates every descriptor, then inserts them all. If any entry is
// malformed or collides with an existing ISBN (or another entry of the same
// request) nothing is inserted.
func (c *InMemoryCatalogue) AddBooks(ctx context.Context, books []model.StockBook) error {
	if books == nil {
		return model.ErrNilInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[int64]struct{}, len(books))
	for _, b := range books {
		if err := validateStockBook(b); err != nil {
			return err
		}
		if _, dup := seen[b.ISBN]; dup {
			return model.NewDuplicateISBNError(b.ISBN)
		}
		if _, exists := c.books[b.ISBN]; exists {
			return model.NewDuplicateISBNError(b.ISBN)
		}
		seen[b.ISBN] = struct{}{}
	}

	for _, b := range books {
		c.books[b.ISBN] = newLockableBook(b)
	}
	return nil
}

// RemoveBooks validates that every ISBN is well formed and present, then
// removes them all. All-or-nothing.
func (c *InMemoryCatalogue) RemoveBooks(ctx context.Context, isbns []int64) error {
	if isbns == nil {
		return model.ErrNilInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, isbn := range isbns {
		if isbn < 1 {
			return model.NewInvalidISBNError(isbn)
		}
		if _, exists := c.books[isbn]; !exists {
			return model.NewBookNotFoundError(isbn)
		}
	}

	for _, isbn := range isbns {
		delete(c.books, isbn)
	}
	return nil
}

// RemoveAllBooks empties the catalogue.
func (c *InMemoryCatalogue) RemoveAllBooks(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.books = make(map[int64]*lockableBook)
	return nil
}

// ========================================
// MODE B — STOCK MUTATIONS
// ========================================

// AddCopies adds every delta to its record. Validation covers the whole input
// before any record is locked; the deltas are then applied under the write
// locks of all touched records at once.
func (c *InMemoryCatalogue) AddCopies(ctx context.Context, copies []model.BookCopy) error {
	if copies == nil {
		return model.ErrNilInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, bc := range copies {
		if bc.ISBN < 1 {
			return model.NewInvalidISBNError(bc.ISBN)
		}
		if bc.NumCopies < 1 {
			return model.NewInvalidCopyCountError(bc.ISBN, bc.NumCopies)
		}
	}

	recs, byISBN, err := c.resolve(copyISBNs(copies))
	if err != nil {
		return err
	}

	lockAllWrite(recs)
	defer unlockAllWrite(recs)

	for _, bc := range copies {
		byISBN[bc.ISBN].rec.AddCopies(bc.NumCopies)
	}
	return nil
}

// BuyBooks is observably atomic over the whole request: either every
// requested purchase is applied, or none is and the only mutation is the
// sale-miss bookkeeping on the books that lacked stock. A shortfall on one
// book contributes requested minus available to its sale-miss counter.
func (c *InMemoryCatalogue) BuyBooks(ctx context.Context, copies []model.BookCopy) error {
	if copies == nil {
		return model.ErrNilInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, bc := range copies {
		if bc.ISBN < 1 {
			return model.NewInvalidISBNError(bc.ISBN)
		}
		if bc.NumCopies < 1 {
			return model.NewInvalidCopyCountError(bc.ISBN, bc.NumCopies)
		}
	}

	recs, byISBN, err := c.resolve(copyISBNs(copies))
	if err != nil {
		return err
	}

	// Repeated ISBNs in one request compete for the same stock, so the
	// availability check runs against the summed demand per book.
	requested := make(map[int64]int, len(copies))
	for _, bc := range copies {
		requested[bc.ISBN] += bc.NumCopies
	}

	lockAllWrite(recs)
	defer unlockAllWrite(recs)

	var firstErr error
	checked := make(map[int64]struct{}, len(requested))
	for _, bc := range copies {
		if _, done := checked[bc.ISBN]; done {
			continue
		}
		checked[bc.ISBN] = struct{}{}

		rec := byISBN[bc.ISBN].rec
		want := requested[bc.ISBN]
		if available := rec.NumCopies(); available < want {
			rec.AddSaleMiss(want - available)
			if firstErr == nil {
				firstErr = model.NewOutOfStockError(bc.ISBN, want, available)
			}
		}
	}
	if firstErr != nil {
		return firstErr
	}

	for isbn, want := range requested {
		byISBN[isbn].rec.Buy(want)
	}
	return nil
}

// RateBooks applies every rating to its record under the write locks of all
// touched records at once.
func (c *InMemoryCatalogue) RateBooks(ctx context.Context, ratings []model.BookRating) error {
	if ratings == nil {
		return model.ErrNilInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, br := range ratings {
		if br.ISBN < 1 {
			return model.NewInvalidISBNError(br.ISBN)
		}
		if br.Rating < 0 || br.Rating > model.MaxRating {
			return model.NewInvalidRatingError(br.ISBN, br.Rating)
		}
	}

	isbns := make([]int64, len(ratings))
	for i, br := range ratings {
		isbns[i] = br.ISBN
	}
	recs, byISBN, err := c.resolve(isbns)
	if err != nil {
		return err
	}

	lockAllWrite(recs)
	defer unlockAllWrite(recs)

	for _, br := range ratings {
		byISBN[br.ISBN].rec.AddRating(br.Rating)
	}
	return nil
}

// UpdateEditorPicks sets the editorial flag on every referenced record. When
// a request mentions the same ISBN twice, the later entry wins.
func (c *InMemoryCatalogue) UpdateEditorPicks(ctx context.Context, picks []model.BookEditorPick) error {
	if picks == nil {
		return model.ErrNilInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, bp := range picks {
		if bp.ISBN < 1 {
			return model.NewInvalidISBNError(bp.ISBN)
		}
	}

	isbns := make([]int64, len(picks))
	for i, bp := range picks {
		isbns[i] = bp.ISBN
	}
	recs, byISBN, err := c.resolve(isbns)
	if err != nil {
		return err
	}

	lockAllWrite(recs)
	defer unlockAllWrite(recs)

	for _, bp := range picks {
		byISBN[bp.ISBN].rec.SetEditorPick(bp.EditorPick)
	}
	return nil
}

// ========================================
// MODE B — READS
// ========================================

// GetBooks snapshots every record, holding all per-record read locks
// simultaneously so that no record is observed mid-mutation. Results come
// back in ascending ISBN order.
func (c *InMemoryCatalogue) GetBooks(ctx context.Context) ([]model.StockBook, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recs := c.allRecords()
	lockAllRead(recs)
	defer unlockAllRead(recs)

	out := make([]model.StockBook, 0, len(recs))
	for _, lb := range recs {
		out = append(out, lb.rec.Snapshot())
	}
	return out, nil
}

// GetBooksByISBN returns full snapshots for the requested ISBNs, in request
// order. The whole call fails if any ISBN is malformed or absent.
func (c *InMemoryCatalogue) GetBooksByISBN(ctx context.Context, isbns []int64) ([]model.StockBook, error) {
	if isbns == nil {
		return nil, model.ErrNilInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, isbn := range isbns {
		if isbn < 1 {
			return nil, model.NewInvalidISBNError(isbn)
		}
	}

	recs, byISBN, err := c.resolve(isbns)
	if err != nil {
		return nil, err
	}

	lockAllRead(recs)
	defer unlockAllRead(recs)

	out := make([]model.StockBook, 0, len(isbns))
	for _, isbn := range isbns {
		out = append(out, byISBN[isbn].rec.Snapshot())
	}
	return out, nil
}

// GetBooksForClients is GetBooksByISBN restricted to the client projection.
func (c *InMemoryCatalogue) GetBooksForClients(ctx context.Context, isbns []int64) ([]model.Book, error) {
	if isbns == nil {
		return nil, model.ErrNilInput
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, isbn := range isbns {
		if isbn < 1 {
			return nil, model.NewInvalidISBNError(isbn)
		}
	}

	recs, byISBN, err := c.resolve(isbns)
	if err != nil {
		return nil, err
	}

	lockAllRead(recs)
	defer unlockAllRead(recs)

	out := make([]model.Book, 0, len(isbns))
	for _, isbn := range isbns {
		out = append(out, byISBN[isbn].rec.ClientView())
	}
	return out, nil
}

// GetEditorPicks returns up to count editor picks. When more than count books
// carry the flag, the result is a uniform sample without replacement.
func (c *InMemoryCatalogue) GetEditorPicks(ctx context.Context, count int) ([]model.Book, error) {
	if count < 0 {
		return nil, model.ErrInvalidResultCount
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	recs := c.allRecords()
	lockAllRead(recs)
	defer unlockAllRead(recs)

	picks := make([]model.Book, 0)
	for _, lb := range recs {
		if lb.rec.EditorPick() {
			picks = append(picks, lb.rec.ClientView())
		}
	}

	if len(picks) <= count {
		return picks, nil
	}

	out := make([]model.Book, 0, count)
	for _, i := range rand.Perm(len(picks))[:count] {
		out = append(out, picks[i])
	}
	return out, nil
}

// GetTopRatedBooks returns the count books with the greatest average rating.
// Books never rated are excluded; ties break by ascending ISBN.
func (c *InMemoryCatalogue) GetTopRatedBooks(ctx context.Context, count int) ([]model.Book, error) {
	if count < 0 {
		return nil, model.ErrInvalidResultCount
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	recs := c.allRecords()
	lockAllRead(recs)
	defer unlockAllRead(recs)

	type ratedBook struct {
		book    model.Book
		average float64
	}
	rated := make([]ratedBook, 0, len(recs))
	for _, lb := range recs {
		if lb.rec.NumTimesRated() == 0 {
			continue
		}
		rated = append(rated, ratedBook{book: lb.rec.ClientView(), average: lb.rec.AverageRating()})
	}

	// allRecords returned ascending ISBNs, so a stable sort on the average
	// alone preserves the ISBN tie-break.
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].average > rated[j].average
	})

	if count > len(rated) {
		count = len(rated)
	}
	out := make([]model.Book, 0, count)
	for _, rb := range rated[:count] {
		out = append(out, rb.book)
	}
	return out, nil
}

// GetBooksInDemand returns snapshots of every book whose sale-miss counter is
// positive, in ascending ISBN order.
func (c *InMemoryCatalogue) GetBooksInDemand(ctx context.Context) ([]model.StockBook, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	recs := c.allRecords()
	lockAllRead(recs)
	defer unlockAllRead(recs)

	out := make([]model.StockBook, 0)
	for _, lb := range recs {
		if lb.rec.NumSaleMisses() > 0 {
			out = append(out, lb.rec.Snapshot())
		}
	}
	return out, nil
}

// ========================================
// INTERNAL HELPERS
// ========================================

// resolve looks up every ISBN and returns the distinct records both as a
// slice in ascending ISBN order (the lock acquisition order) and as a map for
// per-element application. The catalogue-level lock must be held.
func (c *InMemoryCatalogue) resolve(isbns []int64) ([]*lockableBook, map[int64]*lockableBook, error) {
	byISBN := make(map[int64]*lockableBook, len(isbns))
	order := make([]int64, 0, len(isbns))
	for _, isbn := range isbns {
		if _, ok := byISBN[isbn]; ok {
			continue
		}
		lb, ok := c.books[isbn]
		if !ok {
			return nil, nil, model.NewBookNotFoundError(isbn)
		}
		byISBN[isbn] = lb
		order = append(order, isbn)
	}

	slices.Sort(order)
	recs := make([]*lockableBook, len(order))
	for i, isbn := range order {
		recs[i] = byISBN[isbn]
	}
	return recs, byISBN, nil
}

// allRecords returns every record in ascending ISBN order. The catalogue
// read lock must be held so the key set cannot change underneath.
func (c *InMemoryCatalogue) allRecords() []*lockableBook {
	isbns := make([]int64, 0, len(c.books))
	for isbn := range c.books {
		isbns = append(isbns, isbn)
	}
	slices.Sort(isbns)

	recs := make([]*lockableBook, len(isbns))
	for i, isbn := range isbns {
		recs[i] = c.books[isbn]
	}
	return recs
}

func validateStockBook(b model.StockBook) error {
	switch {
	case b.ISBN < 1:
		return model.NewInvalidISBNError(b.ISBN)
	case b.Title == "":
		return model.ErrEmptyTitle
	case b.Author == "":
		return model.ErrEmptyAuthor
	case b.Price.IsNegative():
		return model.ErrNegativePrice
	case b.NumCopies < 0:
		return model.ErrNegativeCopies
	default:
		return nil
	}
}

func copyISBNs(copies []model.BookCopy) []int64 {
	isbns := make([]int64, len(copies))
	for i, bc := range copies {
		isbns[i] = bc.ISBN
	}
	return isbns
}
