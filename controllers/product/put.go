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

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Stock       *int     `json:"stock" binding:"omitempty,min=0"`
}

// UpdateProduct updates an existing product by ID. Accepts any subset of the
// product fields; absent fields are left untouched.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			api.Error(c, http.StatusBadRequest, "Invalid product ID format")
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Error(c, http.StatusBadRequest, "Invalid product fields")
			return
		}

		// Fetch existing product
		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				api.Error(c, http.StatusNotFound, "Product not found")
			} else {
				api.Error(c, http.StatusInternalServerError, "Failed to retrieve product")
			}
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}

		if err := db.Save(&product).Error; err != nil {
			api.Error(c, http.StatusInternalServerError, "Failed to update product")
			return
		}

		api.OK(c, http.StatusOK, product)
	}
}
