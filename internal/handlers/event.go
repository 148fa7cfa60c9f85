package handlers

import (
	"net/http"
	"time"

	"studyhive/internal/db"
	"studyhive/internal/middleware"
	"studyhive/internal/models"
	"studyhive/internal/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct{}

func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

type createEventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	GroupID     uint      `json:"groupId"`
}

func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		clientError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.GroupID == 0 || req.Start.IsZero() || req.End.IsZero() {
		clientError(c, http.StatusBadRequest, "Title, start, end and groupId are required")
		return
	}

	user, ok := requireMembership(c, req.GroupID)
	if !ok {
		return
	}

	event := models.Event{
		GroupID:     req.GroupID,
		CreatorID:   user.ID,
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
	}
	if err := db.DB.Create(&event).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListByGroup returns a group's events sorted by start time.
func (h *EventHandler) ListByGroup(c *gin.Context) {
	groupID := utils.StringToUint(c.Param("id"))
	if _, ok := requireMembership(c, groupID); !ok {
		return
	}

	var events []models.Event
	if err := db.DB.Where("group_id = ?", groupID).
		Order("start ASC").
		Find(&events).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var event models.Event
	if err := db.DB.First(&event, utils.StringToUint(c.Param("id"))).Error; err != nil {
		clientError(c, http.StatusNotFound, "Event not found")
		return
	}
	if event.CreatorID != user.ID {
		clientError(c, http.StatusForbidden, "Not authorized")
		return
	}

	if err := db.DB.Delete(&event).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
