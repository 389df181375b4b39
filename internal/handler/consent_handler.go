package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/handler/dto"
	"github.com/frankwrk/neomax-engage-rules/internal/handler/helper"
	"github.com/frankwrk/neomax-engage-rules/internal/service"
)

// ConsentHandler обрабатывает запросы, связанные с согласием на cookie
type ConsentHandler struct {
	consentService *service.ConsentService
}

// NewConsentHandler создает новый обработчик записей о согласии
func NewConsentHandler(consentService *service.ConsentService) *ConsentHandler {
	return &ConsentHandler{consentService: consentService}
}

// Save сохраняет запись о согласии. Работает и для анонимных посетителей:
// если запрос аутентифицирован, запись привязывается к пользователю.
func (h *ConsentHandler) Save(c *gin.Context) {
	var req dto.ConsentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	record := &entity.ConsentRecord{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Preferences: entity.ConsentPreferences{
			Necessary:  req.Preferences.Necessary,
			Functional: req.Preferences.Functional,
			Analytics:  req.Preferences.Analytics,
			Marketing:  req.Preferences.Marketing,
		},
		ConsentType: req.ConsentType,
	}

	if userID, ok := currentUserID(c); ok {
		record.UserID = &userID
	}

	if err := h.consentService.Save(record); err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Consent saved"})
}

// GetMine возвращает последнюю запись о согласии текущего пользователя
func (h *ConsentHandler) GetMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	record, err := h.consentService.GetForUser(userID)
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"consent": record})
}

// List возвращает страницу записей о согласии (администратор)
func (h *ConsentHandler) List(c *gin.Context) {
	// Получаем параметры пагинации из query
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("page_size", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 {
		pageSize = 10 // Значение по умолчанию
	} else if pageSize > 100 {
		pageSize = 100 // Максимальный лимит
	}

	result, err := h.consentService.List(page, pageSize)
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
