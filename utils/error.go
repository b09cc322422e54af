package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

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
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

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

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	Logger := GetLogger()
	Logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// RespondError maps a typed scheduling error onto an HTTP status. Anything
// unrecognized is a storage or internal failure, surfaced as 500 so clients
// never confuse "slot taken" with "database unreachable".
func RespondError(c *gin.Context, err error) {
	var ve *ValidationError
	var ce *ConflictError
	var ne *NotFoundError

	switch {
	case errors.As(err, &ve):
		JSONError(c, http.StatusBadRequest, "validation failed", ve.Message)
	case errors.As(err, &ce):
		JSONError(c, http.StatusConflict, "conflict", ce.Message)
	case errors.As(err, &ne):
		JSONError(c, http.StatusNotFound, "not found", ne.Message)
	default:
		GetLogger().Error("internal error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal Server Error"})
	}
}
