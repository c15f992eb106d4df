package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devmalik7/shopcart-api/api"
	"github.com/devmalik7/shopcart-api/models"
)

// GetProducts lists the catalog one page at a time.
// Query params: page, limit, category, search.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1️⃣ Paging & filter params
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 1 {
			limit = 10
		}
		category := c.Query("category")
		search := c.Query("search")

		// 2️⃣ Build base query
		query := db.Model(&models.Product{})
		if category != "" {
			query = query.Where("category = ?", category)
		}

		likePattern := "%" + search + "%"
		if search != "" {
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		// 3️⃣ Count before paging
		var total int64
		if err := query.Count(&total).Error; err != nil {
			api.Error(c, http.StatusInternalServerError, "Failed to count products")
			return
		}

		// 4️⃣ Ordering: name hits rank above description-only hits when
		// searching, newest first otherwise
		if search != "" {
			query = query.Clauses(clause.OrderBy{
				Expression: clause.Expr{
					SQL:                "CASE WHEN name ILIKE ? THEN 0 ELSE 1 END, created_at DESC",
					Vars:               []interface{}{likePattern},
					WithoutParentheses: true,
				},
			})
		} else {
			query = query.Order("created_at DESC")
		}

		var products []models.Product
		if err := query.Offset((page - 1) * limit).Limit(limit).Find(&products).Error; err != nil {
			api.Error(c, http.StatusInternalServerError, "Failed to fetch products")
			return
		}

		pages := (total + int64(limit) - 1) / int64(limit)
		api.Paginated(c, http.StatusOK, products, api.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		})
	}
}
