package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankwrk/neomax-engage-rules/internal/handler/dto"
	"github.com/frankwrk/neomax-engage-rules/internal/handler/helper"
	"github.com/frankwrk/neomax-engage-rules/internal/service"
)

// UserHandler обрабатывает запросы, связанные с пользователями
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler создает новый обработчик пользователей
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile возвращает профиль текущего пользователя
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile обновляет профиль текущего пользователя
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(userID, service.ProfileUpdate{
		FullName:     req.FullName,
		MobileNumber: req.MobileNumber,
		Gender:       req.Gender,
		AgeRange:     req.AgeRange,
		County:       req.County,
		Interests:    req.Interests,
	})
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
