package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/pkg/auth"
)

// Ключи контекста запроса
const (
	ctxUserID    = "userID"
	ctxUserEmail = "userEmail"
	ctxUserRole  = "userRole"
)

// AuthMiddleware проверяет Bearer-токен и кладет данные пользователя в контекст
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := jwtService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUserRole, claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware кладет данные пользователя в контекст, если запрос
// пришел с действующим токеном, и пропускает запрос дальше в любом случае
func OptionalAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := jwtService.ParseToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
				c.Set(ctxUserID, claims.UserID)
				c.Set(ctxUserEmail, claims.Email)
				c.Set(ctxUserRole, claims.Role)
			}
		}
		c.Next()
	}
}

// AdminMiddleware пропускает только администраторов; ставится после AuthMiddleware
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ctxUserRole)
		if role != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// currentUserID достает ID аутентифицированного пользователя из контекста
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(ctxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
