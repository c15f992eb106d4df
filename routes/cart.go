package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devmalik7/shopcart-api/cart"
	cartControllers "github.com/devmalik7/shopcart-api/controllers/cart"
	"github.com/devmalik7/shopcart-api/middleware"
	"github.com/devmalik7/shopcart-api/store"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires JWT middleware.
func SetupCartRoutes(r *gin.RouterGroup, db *gorm.DB) {
	engine := cart.NewEngine(store.NewProductStore(db), store.NewCartStore(db))

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(engine))
		cartGroup.POST("", cartControllers.AddToCart(engine))
		cartGroup.PUT("/:productId", cartControllers.UpdateCartItem(engine))
		cartGroup.DELETE("/:productId", cartControllers.RemoveCartItem(engine))
		cartGroup.DELETE("", cartControllers.ClearCart(engine))
	}
}
