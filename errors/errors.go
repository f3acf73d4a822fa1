package errors

import (
	"fmt"
	"net/http"
	"strings"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
)

// Error is the API error: a stable message plus the HTTP status it maps to.
// The taxonomy is fixed: 400 validation, 401 auth, 403 forbidden,
// 404 not found, 500 store.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

var (
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrForbidden           = New("forbidden", http.StatusForbidden)
	ErrNotFound            = New("not found", http.StatusNotFound)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
	ErrInvalidPassword     = New("invalid email, username or password", http.StatusUnauthorized)
)

// GetUniqueConstraintError maps a store uniqueness violation to a 400 with
// a field-specific message, falling back to a generic duplicate message.
func GetUniqueConstraintError(err error) *Error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "user_name"), strings.Contains(msg, "username"):
		return New("username already in use", http.StatusBadRequest)
	case strings.Contains(msg, "email"):
		return New("email already in use", http.StatusBadRequest)
	default:
		return New("duplicate record", http.StatusBadRequest)
	}
}

// ErrorHandler is plugged into the rate limiter.
func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"message": "too many requests, try again later",
		"status":  http.StatusTooManyRequests,
	})
	c.Abort()
}
