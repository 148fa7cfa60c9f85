package models

import (
	"time"
)

type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`
	CreatedByID uint      `gorm:"not null;index" json:"createdBy"`
	CreatedBy   User      `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Members     []User    `gorm:"many2many:group_members;" json:"members"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasMember reports whether the user is in the loaded members list.
func (g *Group) HasMember(userID uint) bool {
	for _, m := range g.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}
