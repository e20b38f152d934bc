package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape every endpoint responds with. Data and Error
// are mutually exclusive in practice; both are omitted when empty.
type Envelope[T any] struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
	Data      T           `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope with the given status.
func Success[T any](ctx *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, Envelope[T]{
		Success:   true,
		Message:   message,
		RequestID: ctx.GetString("request_id"),
		Data:      data,
	})
}

// Error writes a failure envelope; err carries machine-readable detail
// such as per-field validation messages.
func Error(ctx *gin.Context, status int, message string, err interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, Envelope[any]{
		Success:   false,
		Message:   message,
		RequestID: ctx.GetString("request_id"),
		Error:     err,
	})
}
