package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devmalik7/shopcart-api/api"
	"github.com/devmalik7/shopcart-api/models"
)

// GetCategories returns the distinct category strings in the catalog.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Distinct().
			Order("category").
			Pluck("category", &categories).Error; err != nil {
			api.Error(c, http.StatusInternalServerError, "Failed to fetch categories")
			return
		}

		api.OK(c, http.StatusOK, categories)
	}
}
