package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RoleStockManager is the role carried by tokens issued to inventory staff.
const RoleStockManager = "stock_manager"

// StockManagerMiddleware restricts a route group to stock managers. It runs
// after AuthMiddleware, which stores the token's role in the context.
func StockManagerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied: stock manager role required",
			})
			c.Abort()
			return
		}

		role, ok := roleInterface.(string)
		if !ok || role != RoleStockManager {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Access denied: stock manager role required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
