package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/handler/dto"
	"github.com/frankwrk/neomax-engage-rules/internal/handler/helper"
	"github.com/frankwrk/neomax-engage-rules/internal/service"
)

// AuthHandler обрабатывает запросы регистрации и входа
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register обрабатывает регистрацию нового пользователя
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	user := &entity.User{
		Email:        req.Email,
		Password:     req.Password,
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		Gender:       req.Gender,
		AgeRange:     req.AgeRange,
		County:       req.County,
		Interests:    entity.StringArray(req.Interests),
	}

	result, err := h.authService.Register(user, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login обрабатывает вход пользователя
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	result, err := h.authService.Login(req.Email, req.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Refresh обменивает refresh-токен на новую пару токенов
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	result, err := h.authService.Refresh(req.RefreshToken, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout отзывает refresh-токен текущей сессии
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
