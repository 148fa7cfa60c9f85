package models

import (
	"time"
)

// Message is immutable once created; there is no edit or delete.
type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SenderID    uint      `gorm:"not null;index" json:"senderId"`
	Sender      User      `gorm:"foreignKey:SenderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"sender"`
	RecipientID uint      `gorm:"not null;index" json:"recipientId"`
	Recipient   User      `gorm:"foreignKey:RecipientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"recipient"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

// Conversation is a derived view, not a table: the latest message
// exchanged with one counterparty.
type Conversation struct {
	User        User    `json:"user"`
	LastMessage Message `json:"lastMessage"`
}
