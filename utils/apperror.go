package utils

import (
	"errors"
	"net/http"

	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AppError carries a stable machine-readable code next to the human detail.
// Services return these; handlers hand them to RespondError.
type AppError struct {
	Code    string
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFoundf(format string, args ...interface{}) error {
	return &AppError{Code: "NOT_FOUND", Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func InvalidRequestf(format string, args ...interface{}) error {
	return &AppError{Code: "INVALID_REQUEST", Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func CapacityExhaustedf(format string, args ...interface{}) error {
	return &AppError{Code: "CAPACITY_EXHAUSTED", Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) error {
	return &AppError{Code: "CONFLICT", Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticatedf(format string, args ...interface{}) error {
	return &AppError{Code: "UNAUTHENTICATED", Status: http.StatusUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...interface{}) error {
	return &AppError{Code: "FORBIDDEN", Status: http.StatusForbidden, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an AppError with the given code.
func IsKind(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// RespondError maps a service error to the wire format. Unknown errors are
// treated as store-level failures and surface as 503.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"error": appErr.Message, "code": appErr.Code})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found", "code": "NOT_FOUND"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable", "code": "SERVICE_UNAVAILABLE"})
}
