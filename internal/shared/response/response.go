package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the JSON shape every endpoint responds with. Count is only
// populated on list responses, Data is omitted on errors.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List is Success plus the item count alongside the data.
func List(c *gin.Context, status int, message string, data any, count int) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
	})
}
