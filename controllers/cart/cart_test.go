package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/devmalik7/shopcart-api/cart"
	"github.com/devmalik7/shopcart-api/models"
	"github.com/devmalik7/shopcart-api/store"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ID    string `json:"id"`
		Items []struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
			Product   struct {
				Name  string  `json:"name"`
				Price float64 `json:"price"`
			} `json:"product"`
		} `json:"items"`
	} `json:"data"`
}

// testRouter wires the cart handlers over the in-memory store with a stub
// identity middleware standing in for the JWT gate.
func testRouter(mem *store.Memory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := cart.NewEngine(mem, mem)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-a")
	})
	r.GET("/cart", GetCart(engine))
	r.POST("/cart", AddToCart(engine))
	r.PUT("/cart/:productId", UpdateCartItem(engine))
	r.DELETE("/cart/:productId", RemoveCartItem(engine))
	r.DELETE("/cart", ClearCart(engine))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetCartCreatesLazily(t *testing.T) {
	r := testRouter(store.NewMemory())

	w, env := doJSON(t, r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)
	require.NotEmpty(t, env.Data.ID)
	require.Empty(t, env.Data.Items)
}

func TestAddToCartValidation(t *testing.T) {
	mem := store.NewMemory()
	r := testRouter(mem)

	w, env := doJSON(t, r, http.MethodPost, "/cart", `{"quantity":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, env.Success)
	require.Equal(t, "Please provide productId and quantity", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/cart", `{"productId":"not-a-uuid","quantity":1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid product ID format", env.Message)

	w, env = doJSON(t, r, http.MethodPost, "/cart",
		`{"productId":"7f9c24e5-2b31-4bce-9c3f-8f2d5a2f1b11","quantity":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, env.Success)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	r := testRouter(store.NewMemory())

	w, env := doJSON(t, r, http.MethodPost, "/cart",
		`{"productId":"7f9c24e5-2b31-4bce-9c3f-8f2d5a2f1b11","quantity":1}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Product not found", env.Message)
}

func TestAddToCartInsufficientStock(t *testing.T) {
	mem := store.NewMemory()
	widget := mem.AddProduct(models.Product{Name: "Widget", Price: 9.99, Category: "Tools", Stock: 2})
	r := testRouter(mem)

	w, env := doJSON(t, r, http.MethodPost, "/cart",
		`{"productId":"`+widget.ID+`","quantity":3}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Insufficient stock", env.Message)
}

func TestCartItemLifecycle(t *testing.T) {
	mem := store.NewMemory()
	widget := mem.AddProduct(models.Product{Name: "Widget", Price: 9.99, Category: "Tools", Stock: 5})
	r := testRouter(mem)

	// Add one widget.
	w, env := doJSON(t, r, http.MethodPost, "/cart",
		`{"productId":"`+widget.ID+`","quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.Data.Items, 1)
	require.Equal(t, 1, env.Data.Items[0].Quantity)
	require.Equal(t, "Widget", env.Data.Items[0].Product.Name)

	// Bump its quantity to 2.
	w, env = doJSON(t, r, http.MethodPut, "/cart/"+widget.ID, `{"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 2, env.Data.Items[0].Quantity)

	// Remove it.
	w, env = doJSON(t, r, http.MethodDelete, "/cart/"+widget.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, env.Data.Items)

	// Removing again stays 200: idempotent.
	w, _ = doJSON(t, r, http.MethodDelete, "/cart/"+widget.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateCartItemErrors(t *testing.T) {
	mem := store.NewMemory()
	widget := mem.AddProduct(models.Product{Name: "Widget", Price: 9.99, Category: "Tools", Stock: 5})
	r := testRouter(mem)

	// No cart yet.
	w, env := doJSON(t, r, http.MethodPut, "/cart/"+widget.ID, `{"quantity":1}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Cart not found", env.Message)

	// Cart exists but the product is not a line in it.
	_, _ = doJSON(t, r, http.MethodGet, "/cart", "")
	other := mem.AddProduct(models.Product{Name: "Other", Price: 1, Category: "Tools", Stock: 5})
	w, env = doJSON(t, r, http.MethodPut, "/cart/"+other.ID, `{"quantity":1}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Item not found in cart", env.Message)

	// Zero quantity fails binding.
	w, env = doJSON(t, r, http.MethodPut, "/cart/"+widget.ID, `{"quantity":0}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Quantity must be at least 1", env.Message)
}

func TestClearCart(t *testing.T) {
	mem := store.NewMemory()
	widget := mem.AddProduct(models.Product{Name: "Widget", Price: 9.99, Category: "Tools", Stock: 5})
	r := testRouter(mem)

	// Clearing before any cart exists is a 404.
	w, env := doJSON(t, r, http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Cart not found", env.Message)

	_, _ = doJSON(t, r, http.MethodPost, "/cart", `{"productId":"`+widget.ID+`","quantity":2}`)

	w, env = doJSON(t, r, http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Cart cleared successfully", env.Message)
	require.Empty(t, env.Data.Items)
}
