package handler

import (
	"net/http"
	"strconv"

	"bookstore-catalogue/internal/domains/catalog/model"
	"bookstore-catalogue/internal/domains/catalog/service"
	"bookstore-catalogue/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ClientHandler serves the purchase surface of the catalogue.
type ClientHandler struct {
	svc service.ClientAPI
}

func NewClientHandler(svc service.ClientAPI) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// BuyBooks handles POST /books/buy with a JSON array of book copies.
func (h *ClientHandler) BuyBooks(c *gin.Context) {
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

	if err := h.svc.BuyBooks(c.Request.Context(), req); err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"purchased": len(req)})
}

// RateBooks handles POST /books/ratings with a JSON array of ratings.
func (h *ClientHandler) RateBooks(c *gin.Context) {
	var req []model.BookRating
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	for _, br := range req {
		if err := br.Validate(); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	if err := h.svc.RateBooks(c.Request.Context(), req); err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rated": len(req)})
}

// GetBooks handles POST /books/lookup with a JSON array of ISBNs.
func (h *ClientHandler) GetBooks(c *gin.Context) {
	var isbns []int64
	if err := c.ShouldBindJSON(&isbns); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	books, err := h.svc.GetBooksForClients(c.Request.Context(), isbns)
	if err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GetEditorPicks handles GET /books/picks?count=k.
func (h *ClientHandler) GetEditorPicks(c *gin.Context) {
	count, ok := countQuery(c)
	if !ok {
		return
	}

	books, err := h.svc.GetEditorPicks(c.Request.Context(), count)
	if err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

// GetTopRatedBooks handles GET /books/top-rated?count=k.
func (h *ClientHandler) GetTopRatedBooks(c *gin.Context) {
	count, ok := countQuery(c)
	if !ok {
		return
	}

	books, err := h.svc.GetTopRatedBooks(c.Request.Context(), count)
	if err != nil {
		respondCatalogueError(c, err)
		return
	}
	response.Success(c, http.StatusOK, books)
}

func countQuery(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("count", "0")
	count, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(c, "count must be an integer")
		return 0, false
	}
	return count, true
}

// respondCatalogueError maps the catalogue's sentinel errors onto the API's
// status codes and envelope.
func respondCatalogueError(c *gin.Context, err error) {
	switch {
	case model.IsNotFoundError(err):
		response.NotFound(c, err.Error())
	case model.IsDuplicateError(err):
		response.Conflict(c, err.Error())
	case model.IsOutOfStockError(err):
		response.Conflict(c, err.Error())
	case model.IsValidationError(err):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "catalogue operation failed")
	}
}
