package handlers

import (
	"net/http"

	"studyhive/internal/db"
	"studyhive/internal/middleware"
	"studyhive/internal/models"
	"studyhive/internal/services"
	"studyhive/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FlashcardHandler struct{}

func NewFlashcardHandler() *FlashcardHandler {
	return &FlashcardHandler{}
}

type createDeckRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GroupID     uint   `json:"groupId"`
}

func (h *FlashcardHandler) CreateDeck(c *gin.Context) {
	var req createDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.GroupID == 0 {
		clientError(c, http.StatusBadRequest, "Title and groupId are required")
		return
	}

	user, ok := requireMembership(c, req.GroupID)
	if !ok {
		return
	}

	deck := models.Deck{
		GroupID:     req.GroupID,
		CreatorID:   user.ID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := db.DB.Create(&deck).Error; err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, deck)
}

type addCardRequest struct {
	Front  string `json:"front"`
	Back   string `json:"back"`
	DeckID uint   `json:"deckId"`
}

// AddCard appends a card to a deck and rewards the author.
func (h *FlashcardHandler) AddCard(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req addCardRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Front == "" || req.Back == "" || req.DeckID == 0 {
		clientError(c, http.StatusBadRequest, "Front, back and deckId are required")
		return
	}

	var deck models.Deck
	if err := db.DB.First(&deck, req.DeckID).Error; err != nil {
		clientError(c, http.StatusNotFound, "Deck not found")
		return
	}

	card := models.Card{
		DeckID: deck.ID,
		Front:  req.Front,
		Back:   req.Back,
	}
	if err := db.DB.Create(&card).Error; err != nil {
		serverError(c, err)
		return
	}

	services.ApplyReputation(user.ID, services.DeltaCardAdd, services.ReasonCardAdd)

	c.JSON(http.StatusCreated, card)
}

// ListByGroup returns a group's decks, cards populated, newest first.
func (h *FlashcardHandler) ListByGroup(c *gin.Context) {
	groupID := utils.StringToUint(c.Param("id"))
	if _, ok := requireMembership(c, groupID); !ok {
		return
	}

	var decks []models.Deck
	err := db.DB.
		Preload("Creator").
		Preload("Cards", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&decks).Error
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, decks)
}

// DeleteDeck removes a deck and every card in it; creator only.
func (h *FlashcardHandler) DeleteDeck(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var deck models.Deck
	if err := db.DB.First(&deck, utils.StringToUint(c.Param("deckId"))).Error; err != nil {
		clientError(c, http.StatusNotFound, "Deck not found")
		return
	}
	if deck.CreatorID != user.ID {
		clientError(c, http.StatusForbidden, "Not authorized")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("deck_id = ?", deck.ID).Delete(&models.Card{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Deck{}, deck.ID).Error
	})
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deck deleted"})
}
