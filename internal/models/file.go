package models

import (
	"time"
)

// File is upload metadata; the binary itself lives on disk under the
// upload directory and is served statically.
type File struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	GroupID      uint      `gorm:"not null;index" json:"groupId"`
	Group        Group     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UploaderID   uint      `gorm:"not null;index" json:"uploaderId"`
	Uploader     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"uploader"`
	Filename     string    `gorm:"not null" json:"filename"` // generated name on disk
	OriginalName string    `gorm:"not null" json:"originalName"`
	Path         string    `gorm:"not null" json:"path"` // public URL
	CreatedAt    time.Time `json:"createdAt"`
}
