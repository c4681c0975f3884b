package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookstore-catalogue/internal/domains/catalog/repository"
	"bookstore-catalogue/internal/domains/catalog/service"
	"bookstore-catalogue/internal/shared/middleware"
	"bookstore-catalogue/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogue := repository.NewInMemoryCatalogue()
	svc := service.NewService(catalogue)
	clientHandler := NewClientHandler(svc)
	stockHandler := NewStockHandler(svc)

	token, err := jwt.NewManager(testSecret, time.Hour).GenerateToken(middleware.RoleStockManager)
	require.NoError(t, err)

	router := gin.New()

	books := router.Group("/books")
	{
		books.POST("/buy", clientHandler.BuyBooks)
		books.POST("/ratings", clientHandler.RateBooks)
		books.POST("/lookup", clientHandler.GetBooks)
		books.GET("/picks", clientHandler.GetEditorPicks)
		books.GET("/top-rated", clientHandler.GetTopRatedBooks)
	}

	stock := router.Group("/stock")
	stock.Use(
		middleware.AuthMiddleware(testSecret),
		middleware.StockManagerMiddleware(),
	)
	{
		stock.POST("/books", stockHandler.AddBooks)
		stock.POST("/copies", stockHandler.AddCopies)
		stock.PUT("/picks", stockHandler.UpdateEditorPicks)
		stock.GET("/books", stockHandler.GetBooks)
		stock.POST("/books/lookup", stockHandler.GetBooksByISBN)
		stock.GET("/books/in-demand", stockHandler.GetBooksInDemand)
		stock.DELETE("/books", stockHandler.RemoveBooks)
		stock.DELETE("/books/all", stockHandler.RemoveAllBooks)
	}

	return router, token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func addDefaultBook(t *testing.T, router *gin.Engine, token string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/stock/books", token, []gin.H{{
		"isbn":       3044560,
		"title":      "Harry Potter and JUnit",
		"author":     "JK Unit",
		"price":      "10",
		"num_copies": 5,
	}})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestStockRoutesRequireToken(t *testing.T) {
	router, _ := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/stock/books", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/stock/books", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAddAndListBooks(t *testing.T) {
	router, token := setupRouter(t)
	addDefaultBook(t, router, token)

	w := doJSON(t, router, http.MethodGet, "/stock/books", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ISBN      int64 `json:"isbn"`
			NumCopies int   `json:"num_copies"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(3044560), resp.Data[0].ISBN)
	assert.Equal(t, 5, resp.Data[0].NumCopies)
}

func TestBuyFlow(t *testing.T) {
	router, token := setupRouter(t)
	addDefaultBook(t, router, token)

	w := doJSON(t, router, http.MethodPost, "/books/buy", "", []gin.H{{"isbn": 3044560, "num_copies": 5}})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The shelf is now empty; the next purchase conflicts.
	w = doJSON(t, router, http.MethodPost, "/books/buy", "", []gin.H{{"isbn": 3044560, "num_copies": 1}})
	assert.Equal(t, http.StatusConflict, w.Code)

	// The miss shows up on the in-demand report.
	w = doJSON(t, router, http.MethodGet, "/stock/books/in-demand", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []struct {
			ISBN          int64 `json:"isbn"`
			NumSaleMisses int   `json:"num_sale_misses"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 1, resp.Data[0].NumSaleMisses)
}

func TestBuyValidationRejectedAtBoundary(t *testing.T) {
	router, token := setupRouter(t)
	addDefaultBook(t, router, token)

	w := doJSON(t, router, http.MethodPost, "/books/buy", "", []gin.H{{"isbn": -1, "num_copies": 1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/books/buy", "", []gin.H{{"isbn": 42, "num_copies": 1}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRatingsAndTopRated(t *testing.T) {
	router, token := setupRouter(t)
	addDefaultBook(t, router, token)

	w := doJSON(t, router, http.MethodPost, "/books/ratings", "", []gin.H{{"isbn": 3044560, "rating": 4}})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/books/top-rated?count=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []struct {
			ISBN int64 `json:"isbn"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(3044560), resp.Data[0].ISBN)

	w = doJSON(t, router, http.MethodGet, "/books/top-rated?count=oops", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEditorPicksFlow(t *testing.T) {
	router, token := setupRouter(t)
	addDefaultBook(t, router, token)

	w := doJSON(t, router, http.MethodPut, "/stock/picks", token, []gin.H{{"isbn": 3044560, "editor_pick": true}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/books/picks?count=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []struct {
			ISBN int64 `json:"isbn"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
}

func TestRemoveAll(t *testing.T) {
	router, token := setupRouter(t)
	addDefaultBook(t, router, token)

	w := doJSON(t, router, http.MethodDelete, "/stock/books/all", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/stock/books", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestDuplicateAddConflicts(t *testing.T) {
	router, token := setupRouter(t)
	addDefaultBook(t, router, token)

	w := doJSON(t, router, http.MethodPost, "/stock/books", token, []gin.H{{
		"isbn":       3044560,
		"title":      "Harry Potter and JUnit",
		"author":     "JK Unit",
		"price":      "10",
		"num_copies": 5,
	}})
	assert.Equal(t, http.StatusConflict, w.Code)
}
