package models

import (
	"time"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `json:"name"` // display name, optional
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"` // bcrypt hash
	ProfilePicture string    `json:"profilePicture"`    // URL under /uploads
	Reputation     int       `gorm:"default:0" json:"reputation"`
	CreatedAt      time.Time `json:"createdAt"`
	// No DeletedAt, accounts are never hard-deleted
}
