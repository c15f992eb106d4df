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

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
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
		api.OK(c, http.StatusOK, product)
	}
}
