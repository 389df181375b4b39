package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/handler/helper"
	"github.com/frankwrk/neomax-engage-rules/internal/service"
)

// WinnerHandler обрабатывает запросы, связанные с победителями
type WinnerHandler struct {
	winnerService *service.WinnerService
}

// NewWinnerHandler создает новый обработчик победителей
func NewWinnerHandler(winnerService *service.WinnerService) *WinnerHandler {
	return &WinnerHandler{winnerService: winnerService}
}

// List возвращает всех победителей со связанными записями (администратор)
func (h *WinnerHandler) List(c *gin.Context) {
	winners, err := h.winnerService.GetAll()
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"winners": winners})
}

// ListPublic возвращает список победителей без персональных данных.
// Доступен любому аутентифицированному пользователю.
func (h *WinnerHandler) ListPublic(c *gin.Context) {
	winners, err := h.winnerService.GetPublic()
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"winners": winners})
}

// Award помечает приз победителя как выданный (администратор)
func (h *WinnerHandler) Award(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid winner id"})
		return
	}

	if err := h.winnerService.MarkPrizeAwarded(id); err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prize marked as awarded"})
}

// Notify отправляет победителю письмо с деталями выигрыша (администратор)
func (h *WinnerHandler) Notify(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid winner id"})
		return
	}

	if err := h.winnerService.NotifyWinner(id); err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Winner notified"})
}
