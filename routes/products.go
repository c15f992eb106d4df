package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/devmalik7/shopcart-api/controllers/product"
	"github.com/devmalik7/shopcart-api/middleware"
)

// SetupProductRoutes registers all "/products/*" endpoints. Reads are public;
// catalog mutations and the export require a valid token.
func SetupProductRoutes(r *gin.RouterGroup, db *gorm.DB) {
	productGroup := r.Group("/products")
	{
		productGroup.GET("", productControllers.GetProducts(db))
		productGroup.GET("/categories", productControllers.GetCategories(db))
		productGroup.GET("/export", middleware.ValidateToken, productControllers.ExportProductsToExcel(db))
		productGroup.GET("/:id", productControllers.GetProductByID(db))

		productGroup.POST("", middleware.ValidateToken, productControllers.CreateProduct(db))
		productGroup.PUT("/:id", middleware.ValidateToken, productControllers.UpdateProduct(db))
		productGroup.DELETE("/:id", middleware.ValidateToken, productControllers.DeleteProduct(db))
	}
}
