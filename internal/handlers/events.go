package handlers

import (
	"net/http"
	"strconv"

	"strategymint/internal/models"
	"strategymint/internal/notify"

	dbconfig "strategymint/pkg/config"

	"github.com/gin-gonic/gin"
)

// EventHandler serves the indexed event log and the live websocket stream.
type EventHandler struct {
	hub *notify.Hub
}

func NewEventHandler(hub *notify.Hub) *EventHandler {
	return &EventHandler{hub: hub}
}

// ListEvents returns indexed ledger events, newest first
func (h *EventHandler) ListEvents(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 || limit > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	query := dbconfig.DB.Model(&models.EventLog{})
	if eventType := c.Query("type"); eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var events []models.EventLog
	if err := query.Order("id DESC").Limit(limit).Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

// StreamEvents upgrades to a websocket and streams ledger events as they happen
func (h *EventHandler) StreamEvents(c *gin.Context) {
	h.hub.HandleWebSocket(c)
}
