package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devmalik7/shopcart-api/api"
	"github.com/devmalik7/shopcart-api/models"
)

// DeleteProduct removes a product from the catalog. Cart lines referencing it
// are left alone; the cart engine treats the dangling reference as out of
// stock on the next update.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			api.Error(c, http.StatusBadRequest, "Invalid product ID format")
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				api.Error(c, http.StatusNotFound, "Product not found")
			} else {
				api.Error(c, http.StatusInternalServerError, "Failed to retrieve product")
			}
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			api.Error(c, http.StatusInternalServerError, "Failed to delete product")
			return
		}

		api.Message(c, http.StatusOK, "Product deleted successfully", nil)
	}
}
