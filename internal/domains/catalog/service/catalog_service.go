package service

import (
	"context"

	"bookstore-catalogue/internal/domains/catalog/model"
	"bookstore-catalogue/internal/domains/catalog/repository"

	"github.com/rs/zerolog/log"
)

// CatalogService fronts the catalogue for both capability surfaces. One
// instance serves the purchase front-end and the inventory back-end at the
// same time; all synchronisation lives in the catalogue itself.
type CatalogService struct {
	catalogue repository.Catalogue
}

// NewService creates the catalog service on top of a catalogue.
func NewService(catalogue repository.Catalogue) *CatalogService {
	return &CatalogService{catalogue: catalogue}
}

var (
	_ ClientAPI = (*CatalogService)(nil)
	_ StockAPI  = (*CatalogService)(nil)
)

// ========================================
// PURCHASE SURFACE
// ========================================

func (s *CatalogService) BuyBooks(ctx context.Context, copies []model.BookCopy) error {
	if err := s.catalogue.BuyBooks(ctx, copies); err != nil {
		log.Warn().Err(err).Int("items", len(copies)).Msg("purchase rejected")
		return err
	}
	log.Info().Int("items", len(copies)).Msg("purchase completed")
	return nil
}

func (s *CatalogService) RateBooks(ctx context.Context, ratings []model.BookRating) error {
	if err := s.catalogue.RateBooks(ctx, ratings); err != nil {
		return err
	}
	log.Info().Int("items", len(ratings)).Msg("ratings recorded")
	return nil
}

func (s *CatalogService) GetBooksForClients(ctx context.Context, isbns []int64) ([]model.Book, error) {
	return s.catalogue.GetBooksForClients(ctx, isbns)
}

func (s *CatalogService) GetEditorPicks(ctx context.Context, count int) ([]model.Book, error) {
	return s.catalogue.GetEditorPicks(ctx, count)
}

func (s *CatalogService) GetTopRatedBooks(ctx context.Context, count int) ([]model.Book, error) {
	return s.catalogue.GetTopRatedBooks(ctx, count)
}

// ========================================
// STOCK-MANAGEMENT SURFACE
// ========================================

func (s *CatalogService) AddBooks(ctx context.Context, books []model.StockBook) error {
	if err := s.catalogue.AddBooks(ctx, books); err != nil {
		log.Warn().Err(err).Int("items", len(books)).Msg("add books rejected")
		return err
	}
	log.Info().Int("items", len(books)).Msg("books added to catalogue")
	return nil
}

func (s *CatalogService) AddCopies(ctx context.Context, copies []model.BookCopy) error {
	if err := s.catalogue.AddCopies(ctx, copies); err != nil {
		return err
	}
	log.Info().Int("items", len(copies)).Msg("copies restocked")
	return nil
}

func (s *CatalogService) UpdateEditorPicks(ctx context.Context, picks []model.BookEditorPick) error {
	return s.catalogue.UpdateEditorPicks(ctx, picks)
}

func (s *CatalogService) GetBooks(ctx context.Context) ([]model.StockBook, error) {
	return s.catalogue.GetBooks(ctx)
}

func (s *CatalogService) GetBooksByISBN(ctx context.Context, isbns []int64) ([]model.StockBook, error) {
	return s.catalogue.GetBooksByISBN(ctx, isbns)
}

func (s *CatalogService) GetBooksInDemand(ctx context.Context) ([]model.StockBook, error) {
	return s.catalogue.GetBooksInDemand(ctx)
}

func (s *CatalogService) RemoveBooks(ctx context.Context, isbns []int64) error {
	if err := s.catalogue.RemoveBooks(ctx, isbns); err != nil {
		return err
	}
	log.Info().Int("items", len(isbns)).Msg("books removed from catalogue")
	return nil
}

func (s *CatalogService) RemoveAllBooks(ctx context.Context) error {
	if err := s.catalogue.RemoveAllBooks(ctx); err != nil {
		return err
	}
	log.Info().Msg("catalogue cleared")
	return nil
}
