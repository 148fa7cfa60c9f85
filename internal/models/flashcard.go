package models

import (
	"time"
)

type Deck struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GroupID     uint      `gorm:"not null;index" json:"groupId"`
	Group       Group     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatorID   uint      `gorm:"not null;index" json:"creatorId"`
	Creator     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"creator"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"size:500" json:"description"`
	Cards       []Card    `json:"cards"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Card struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeckID    uint      `gorm:"not null;index" json:"deckId"`
	Front     string    `gorm:"type:text;not null" json:"front"`
	Back      string    `gorm:"type:text;not null" json:"back"`
	CreatedAt time.Time `json:"createdAt"`
}
