package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devmalik7/shopcart-api/api"
	"github.com/devmalik7/shopcart-api/models"
)

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Category    string  `json:"category" binding:"required"`
	ImageURL    string  `json:"imageUrl"`
	Stock       int     `json:"stock" binding:"omitempty,min=0"`
}

// CreateProduct creates a new product.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Error(c, http.StatusBadRequest, "Please provide all required fields")
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Category:    input.Category,
			ImageURL:    input.ImageURL,
			Stock:       input.Stock,
		}

		if err := db.Create(&product).Error; err != nil {
			api.Error(c, http.StatusInternalServerError, "Failed to create product")
			return
		}

		api.OK(c, http.StatusCreated, product)
	}
}
