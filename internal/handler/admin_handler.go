package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frankwrk/neomax-engage-rules/internal/handler/helper"
	"github.com/frankwrk/neomax-engage-rules/internal/service"
)

// AdminHandler обрабатывает запросы панели администратора
type AdminHandler struct {
	statsService *service.StatsService
}

// NewAdminHandler создает новый обработчик панели администратора
func NewAdminHandler(statsService *service.StatsService) *AdminHandler {
	return &AdminHandler{statsService: statsService}
}

// Dashboard возвращает сводные показатели платформы
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard()
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
