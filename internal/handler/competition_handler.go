package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/frankwrk/neomax-engage-rules/internal/domain/entity"
	"github.com/frankwrk/neomax-engage-rules/internal/handler/dto"
	"github.com/frankwrk/neomax-engage-rules/internal/handler/helper"
	"github.com/frankwrk/neomax-engage-rules/internal/service"
)

// CompetitionHandler обрабатывает запросы, связанные с конкурсами
type CompetitionHandler struct {
	competitionService *service.CompetitionService
}

// NewCompetitionHandler создает новый обработчик конкурсов
func NewCompetitionHandler(competitionService *service.CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{competitionService: competitionService}
}

// ListActive возвращает конкурсы с открытым приемом заявок
func (h *CompetitionHandler) ListActive(c *gin.Context) {
	competitions, err := h.competitionService.GetActive()
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"competitions": competitions})
}

// Get возвращает конкурс по ID вместе с количеством принятых заявок.
// Правильный ответ в выдачу не попадает (скрыт json-тегом).
func (h *CompetitionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competition id"})
		return
	}

	competition, err := h.competitionService.GetByID(id)
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	entryCount, err := h.competitionService.EntryCount(id)
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"competition": competition,
		"entry_count": entryCount,
	})
}

// ListAll возвращает все конкурсы, включая завершенные (администратор)
func (h *CompetitionHandler) ListAll(c *gin.Context) {
	competitions, err := h.competitionService.GetAll()
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"competitions": competitions})
}

// Create создает новый конкурс (администратор)
func (h *CompetitionHandler) Create(c *gin.Context) {
	var req dto.CompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	competition := &entity.Competition{
		Title:         req.Title,
		Description:   req.Description,
		AdURL:         req.AdURL,
		Question:      req.Question,
		CorrectAnswer: req.CorrectAnswer,
		EndsAt:        req.EndsAt,
	}

	if err := h.competitionService.Create(competition); err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"competition": competition})
}

// Update обновляет конкурс (администратор)
func (h *CompetitionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competition id"})
		return
	}

	var req dto.CompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	competition, err := h.competitionService.GetByID(id)
	if err != nil {
		helper.RespondWithError(c, err)
		return
	}

	competition.Title = req.Title
	competition.Description = req.Description
	competition.AdURL = req.AdURL
	competition.Question = req.Question
	competition.CorrectAnswer = req.CorrectAnswer
	competition.EndsAt = req.EndsAt

	if err := h.competitionService.Update(competition); err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"competition": competition})
}

// Delete удаляет конкурс (администратор)
func (h *CompetitionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid competition id"})
		return
	}

	if err := h.competitionService.Delete(id); err != nil {
		helper.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Competition deleted"})
}
