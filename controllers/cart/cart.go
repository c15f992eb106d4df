package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devmalik7/shopcart-api/api"
	"github.com/devmalik7/shopcart-api/cart"
)

type AddItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GET /api/cart
func GetCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, err := engine.GetOrCreate(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			respondCartError(c, err)
			return
		}
		api.OK(c, http.StatusOK, userCart)
	}
}

// POST /api/cart
func AddToCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Error(c, http.StatusBadRequest, "Please provide productId and quantity")
			return
		}
		if _, err := uuid.Parse(input.ProductID); err != nil {
			api.Error(c, http.StatusBadRequest, "Invalid product ID format")
			return
		}

		userCart, err := engine.AddItem(c.Request.Context(), c.GetString("user_id"), input.ProductID, input.Quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}
		api.OK(c, http.StatusOK, userCart)
	}
}

// PUT /api/cart/:productId
func UpdateCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")
		if _, err := uuid.Parse(productID); err != nil {
			api.Error(c, http.StatusBadRequest, "Invalid product ID format")
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Error(c, http.StatusBadRequest, "Quantity must be at least 1")
			return
		}

		userCart, err := engine.UpdateItemQuantity(c.Request.Context(), c.GetString("user_id"), productID, input.Quantity)
		if err != nil {
			respondCartError(c, err)
			return
		}
		api.OK(c, http.StatusOK, userCart)
	}
}

// DELETE /api/cart/:productId
func RemoveCartItem(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")
		if _, err := uuid.Parse(productID); err != nil {
			api.Error(c, http.StatusBadRequest, "Invalid product ID format")
			return
		}

		userCart, err := engine.RemoveItem(c.Request.Context(), c.GetString("user_id"), productID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		api.OK(c, http.StatusOK, userCart)
	}
}

// DELETE /api/cart
func ClearCart(engine *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, err := engine.Clear(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			respondCartError(c, err)
			return
		}
		api.Message(c, http.StatusOK, "Cart cleared successfully", userCart)
	}
}

// respondCartError maps engine errors onto the error taxonomy: NotFound → 404,
// invalid input and the stock gate → 400, everything else → 500.
func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		api.Error(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, cart.ErrCartNotFound):
		api.Error(c, http.StatusNotFound, "Cart not found")
	case errors.Is(err, cart.ErrItemNotFound):
		api.Error(c, http.StatusNotFound, "Item not found in cart")
	case errors.Is(err, cart.ErrInvalidQuantity):
		api.Error(c, http.StatusBadRequest, "Quantity must be at least 1")
	case cart.IsInsufficientStock(err):
		api.Error(c, http.StatusBadRequest, "Insufficient stock")
	default:
		api.Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
