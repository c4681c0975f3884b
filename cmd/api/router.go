package main

import (
	"net/http"

	"bookstore-catalogue/internal/shared/middleware"
	"bookstore-catalogue/internal/shared/response"
	"bookstore-catalogue/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// ========================================
	// API V1 ROUTES
	// ========================================
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		// ========================================
		// AUTH ROUTES (PUBLIC)
		// ========================================
		auth := v1.Group("/auth")
		{
			// Operator key exchange for the stock-management surface
			auth.POST("/token", issueTokenHandler(c))
		}

		// ========================================
		// CLIENT ROUTES (PUBLIC) — purchase surface
		// ========================================
		books := v1.Group("/books")
		{
			books.POST("/buy", c.ClientHandler.BuyBooks)
			books.POST("/ratings", c.ClientHandler.RateBooks)
			books.POST("/lookup", c.ClientHandler.GetBooks)
			books.GET("/picks", c.ClientHandler.GetEditorPicks)
			books.GET("/top-rated", c.ClientHandler.GetTopRatedBooks)
		}

		// ========================================
		// STOCK ROUTES (PROTECTED) — inventory-manager surface
		// ========================================
		stock := v1.Group("/stock")
		stock.Use(
			middleware.AuthMiddleware(c.Config.Auth.JWTSecret),
			middleware.StockManagerMiddleware(),
		)
		{
			stock.POST("/books", c.StockHandler.AddBooks)
			stock.POST("/copies", c.StockHandler.AddCopies)
			stock.PUT("/picks", c.StockHandler.UpdateEditorPicks)
			stock.GET("/books", c.StockHandler.GetBooks)
			stock.POST("/books/lookup", c.StockHandler.GetBooksByISBN)
			stock.GET("/books/in-demand", c.StockHandler.GetBooksInDemand)
			stock.DELETE("/books", c.StockHandler.RemoveBooks)
			stock.DELETE("/books/all", c.StockHandler.RemoveAllBooks)
		}
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"service":     c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}

func issueTokenHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req struct {
			OperatorKey string `json:"operator_key"`
		}
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.BadRequest(ctx, "invalid request body")
			return
		}

		if req.OperatorKey == "" || req.OperatorKey != c.Config.Auth.OperatorKey {
			response.Unauthorized(ctx, "invalid operator key")
			return
		}

		token, err := c.JWTManager.GenerateToken(middleware.RoleStockManager)
		if err != nil {
			response.InternalServerError(ctx, "failed to issue token")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{"token": token})
	}
}
