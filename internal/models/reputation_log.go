package models

import (
	"time"
)

// ReputationLog is the append-only ledger behind users.reputation.
// The running total on the user row must always equal the sum of that
// user's deltas.
type ReputationLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Delta     int       `gorm:"not null" json:"delta"`
	Reason    string    `gorm:"size:100;not null" json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}
