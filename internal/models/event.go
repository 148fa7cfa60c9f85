package models

import (
	"time"
)

type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GroupID     uint      `gorm:"not null;index" json:"groupId"`
	Group       Group     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatorID   uint      `gorm:"not null;index" json:"creatorId"`
	Creator     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"creator"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"size:500" json:"description"`
	Start       time.Time `gorm:"not null;index" json:"start"`
	End         time.Time `gorm:"not null" json:"end"`
	CreatedAt   time.Time `json:"createdAt"`
}
