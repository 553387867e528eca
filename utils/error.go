package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is a transport-mappable error carrying an HTTP status.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewNotFound(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflict(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func NewBadRequest(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewForbidden(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: fmt.Sprintf(format, args...)}
}

func NewUnauthorized(format string, args ...any) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// IsStatus reports whether err is (or wraps) an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// RespondError maps an error to a JSON response. APIErrors keep their status;
// anything else becomes a 500.
func RespondError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"status": "fail", "message": apiErr.Message})
		return
	}
	GetLogger().Error("internal error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
}
