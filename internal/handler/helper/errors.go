package helper

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
)

// RespondWithError сопоставляет ошибки приложения с HTTP-статусами.
// Неизвестные ошибки логируются и отдаются как 500 без деталей.
func RespondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Email is already registered"})
	case errors.Is(err, apperrors.ErrExpiredToken), errors.Is(err, apperrors.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrMailerNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Email service is not configured"})
	default:
		log.Printf("ERROR: Internal server error in %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
