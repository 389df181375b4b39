package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/handler/dto"
	"github.com/frankwrk/neomax-engage-rules/internal/handler/helper"
	apperrors "github.com/frankwrk/neomax-engage-rules/internal/pkg/errors"
	"github.com/frankwrk/neomax-engage-rules/internal/service"
)

// EntryHandler обрабатывает отправку и просмотр заявок на конкурсы
type EntryHandler struct {
	entryService *service.EntryService
	userService  *service.UserService
}

// NewEntryHandler создает новый обработчик заявок
func NewEntryHandler(entryService *service.EntryService, userService *service.UserService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
		userService:  userService,
	}
}

// Submit обрабатывает отправку заявки аутентифицированным пользователем.
// Отказы допуска возвращаются со статусом 200 и accepted=false;
// 404 отдается только для несуществующего конкурса.
func (h *EntryHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.EntrySubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	competitionID, err := uuid.Parse(req.CompetitionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competition id"})
		return
	}

	user, err := h.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		helper.RespondWithError(c, err)
		return
	}

	result, err := h.entryService.SubmitEntry(user, competitionID, req.Answer)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Competition not found"})
			return
		}
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// List возвращает правильные заявки текущего пользователя (самые новые первыми)
func (h *EntryHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	entries, err := h.entryService.GetUserEntries(userID)
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
