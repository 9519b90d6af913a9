package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/startuphub-br/startuphub-api/internal/app/event"
	"go.uber.org/zap"
)

// EventHandler expõe os endpoints de eventos e check-in
type EventHandler struct {
	eventService *event.Service
	logger       *zap.Logger
}

func NewEventHandler(eventService *event.Service, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// List responde com todos os eventos
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

type createEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location"`
}

// Create cria um evento e responde com o evento e o QR code de check-in
func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	date, err := parseEventDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data inválida"})
		return
	}

	ev, qrDataURL, err := h.eventService.Create(c.Request.Context(), event.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
	})
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"evento":    ev,
		"qrDataUrl": qrDataURL,
	})
}

type checkInRequest struct {
	QRText string `json:"qrText" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

// CheckIn valida o QR apresentado e registra a presença do usuário
func (h *EventHandler) CheckIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	attendance, err := h.eventService.CheckIn(c.Request.Context(), c.Param("id"), req.QRText, req.UserID)
	if err != nil {
		renderError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, attendance)
}

// parseEventDate aceita timestamps RFC3339 e datas simples AAAA-MM-DD
func parseEventDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
