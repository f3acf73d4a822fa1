package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apiError "github.com/wayfarehq/wayfare/errors"
)

// Response is the uniform envelope every handler writes.
type Response struct {
	Message   string      `json:"message"`
	Status    string      `json:"status"`
	Data      interface{} `json:"data,omitempty"`
	Errors    string      `json:"errors,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// JSON writes the envelope. When err is an *errors.Error its message is
// surfaced; any other error is reported generically so store internals never
// leak to the caller.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	errMessage := ""
	if err != nil {
		if e, ok := err.(*apiError.Error); ok {
			errMessage = e.Message
		} else if status < http.StatusInternalServerError {
			errMessage = err.Error()
		} else {
			errMessage = apiError.ErrInternalServerError.Message
		}
	}

	c.JSON(status, Response{
		Message:   message,
		Status:    http.StatusText(status),
		Data:      data,
		Errors:    errMessage,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
