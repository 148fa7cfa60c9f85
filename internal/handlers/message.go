package handlers

import (
	"net/http"

	"studyhive/internal/db"
	"studyhive/internal/middleware"
	"studyhive/internal/models"
	"studyhive/internal/realtime"
	"studyhive/internal/utils"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	hub *realtime.Hub
}

func NewMessageHandler(hub *realtime.Hub) *MessageHandler {
	return &MessageHandler{hub: hub}
}

type sendMessageRequest struct {
	RecipientID uint   `json:"recipientId"`
	Content     string `json:"content"`
}

// Send persists the message and pushes it to the recipient's personal
// room. Delivery is best effort; the record is the source of truth.
func (h *MessageHandler) Send(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RecipientID == 0 || req.Content == "" {
		clientError(c, http.StatusBadRequest, "Recipient and content are required")
		return
	}

	var recipient models.User
	if err := db.DB.First(&recipient, req.RecipientID).Error; err != nil {
		clientError(c, http.StatusNotFound, "Recipient not found")
		return
	}

	message := models.Message{
		SenderID:    user.ID,
		RecipientID: recipient.ID,
		Content:     req.Content,
	}
	if err := db.DB.Create(&message).Error; err != nil {
		serverError(c, err)
		return
	}

	var populated models.Message
	if err := db.DB.Preload("Sender").Preload("Recipient").First(&populated, message.ID).Error; err != nil {
		serverError(c, err)
		return
	}

	h.hub.PublishToUser(recipient.ID, realtime.EventPrivateMessage, populated)

	c.JSON(http.StatusCreated, populated)
}

// Conversation returns both directions of traffic with one user,
// chronological.
func (h *MessageHandler) Conversation(c *gin.Context) {
	user := middleware.CurrentUser(c)
	otherID := utils.StringToUint(c.Param("userId"))

	var messages []models.Message
	err := db.DB.
		Preload("Sender").
		Preload("Recipient").
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			user.ID, otherID, otherID, user.ID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Conversations derives the recent-chats list: one entry per distinct
// counterparty carrying the latest message, most recent first.
func (h *MessageHandler) Conversations(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var messages []models.Message
	err := db.DB.
		Preload("Sender").
		Preload("Recipient").
		Where("sender_id = ? OR recipient_id = ?", user.ID, user.ID).
		Order("created_at DESC").
		Find(&messages).Error
	if err != nil {
		serverError(c, err)
		return
	}

	conversations := make([]models.Conversation, 0)
	seen := make(map[uint]bool)
	for _, msg := range messages {
		other := msg.Sender
		if msg.SenderID == user.ID {
			other = msg.Recipient
		}
		if seen[other.ID] {
			continue
		}
		seen[other.ID] = true
		conversations = append(conversations, models.Conversation{User: other, LastMessage: msg})
	}

	c.JSON(http.StatusOK, conversations)
}
