// Package api holds the uniform JSON response envelope:
// {success, data?, message?, pagination?}.
package api

import "github.com/gin-gonic/gin"

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// OK writes a success envelope with a data payload.
func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// Message writes a success envelope carrying a message alongside the data.
func Message(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// Paginated writes a success envelope with pagination metadata.
func Paginated(c *gin.Context, status int, data interface{}, p Pagination) {
	c.JSON(status, gin.H{"success": true, "data": data, "pagination": p})
}

// Error writes a failure envelope.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}
