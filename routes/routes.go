package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the Auth, Product, and
// Cart route groups under /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	apiGroup := r.Group("/api")

	apiGroup.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
	})

	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(apiGroup, db)

	// 2️⃣ Product routes (reads public, writes JWT-protected)
	SetupProductRoutes(apiGroup, db)

	// 3️⃣ Cart routes (JWT-protected)
	SetupCartRoutes(apiGroup, db)
}
