package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestOKEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, http.StatusOK, gin.H{"value": 42})
	})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.NotNil(t, body["data"])
	require.NotContains(t, body, "message")
}

func TestErrorEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "Insufficient stock")
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, false, body["success"])
	require.Equal(t, "Insufficient stock", body["message"])
	require.NotContains(t, body, "data")
}

func TestPaginatedEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Paginated(c, http.StatusOK, []int{1, 2, 3}, Pagination{Page: 1, Limit: 10, Total: 3, Pages: 1})
	})

	var body struct {
		Success    bool       `json:"success"`
		Pagination Pagination `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, int64(3), body.Pagination.Total)
	require.Equal(t, int64(1), body.Pagination.Pages)
}
