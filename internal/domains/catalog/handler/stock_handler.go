package handler

import (
	"net/http"

	"bookstore-catalogue/internal/domains/catalog/model"
	"bookstore-catalogue/internal/domains/catalog/service"
	"bookstore-catalogue/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// StockHandler serves the stock-management surface of the catalogue. Routes
// behind it are gated to stock managers by the auth middleware chain.
type StockHandler struct {
	svc service.StockAPI
}

func NewStockHandler(svc service.StockAPI) *StockHandler {
	return &StockHandler{svc: svc}
}

// AddBooks handles POST /stock/books with a JSON array of stock descriptors.
func (h *StockHandler) AddBooks(c *gin.Context) {
	var req []model.StockBook
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	for _, b := range req {
		if err := b.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	if err := h.svc.AddBooks(c.Request.Context(), req); err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"added": len(req)})
}

// AddCopies handles POST /stock/copies with a JSON array of copy deltas.
func (h *StockHandler) AddCopies(c *gin.Context) {
	var req []model.BookCopy
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	for _, bc := range req {
		if err := bc.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	if err := h.svc.AddCopies(c.Request.Context(), req); err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"restocked": len(req)})
}

// UpdateEditorPicks handles PUT /stock/picks with a JSON array of flags.
func (h *StockHandler) UpdateEditorPicks(c *gin.Context) {
	var req []model.BookEditorPick
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	for _, bp := range req {
		if err := bp.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	if err := h.svc.UpdateEditorPicks(c.Request.Context(), req); err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": len(req)})
}

// GetBooks handles GET /stock/books.
func (h *StockHandler) GetBooks(c *gin.Context) {
	books, err := h.svc.GetBooks(c.Request.Context())
	if err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GetBooksByISBN handles POST /stock/books/lookup with a JSON array of ISBNs.
func (h *StockHandler) GetBooksByISBN(c *gin.Context) {
	var isbns []int64
	if err := c.ShouldBindJSON(&isbns); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	books, err := h.svc.GetBooksByISBN(c.Request.Context(), isbns)
	if err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GetBooksInDemand handles GET /stock/books/in-demand.
func (h *StockHandler) GetBooksInDemand(c *gin.Context) {
	books, err := h.svc.GetBooksInDemand(c.Request.Context())
	if err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// RemoveBooks handles DELETE /stock/books with a JSON array of ISBNs.
func (h *StockHandler) RemoveBooks(c *gin.Context) {
	var isbns []int64
	if err := c.ShouldBindJSON(&isbns); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.svc.RemoveBooks(c.Request.Context(), isbns); err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": len(isbns)})
}

// RemoveAllBooks handles DELETE /stock/books/all.
func (h *StockHandler) RemoveAllBooks(c *gin.Context) {
	if err := h.svc.RemoveAllBooks(c.Request.Context()); err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"removed": "all"})
}
