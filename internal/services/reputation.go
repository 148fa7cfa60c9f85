package services

import (
	"log/slog"
	"studyhive/internal/db"
	"studyhive/internal/models"

	"gorm.io/gorm"
)

// Reputation actions
const (
	ReasonPostCreate    = "post created"
	ReasonPostDelete    = "post deleted"
	ReasonCommentCreate = "comment created"
	ReasonCommentDelete = "comment deleted"
	ReasonCardAdd       = "flashcard added"
)

// Reputation deltas
const (
	DeltaPostCreate    = 5
	DeltaPostDelete    = -5
	DeltaCommentCreate = 2
	DeltaCommentDelete = -2
	DeltaCardAdd       = 1
)

// AddReputation appends a ledger entry and updates the user's running
// total in one transaction. The counter has no lower bound.
func AddReputation(userID uint, delta int, reason string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		entry := models.ReputationLog{
			UserID: userID,
			Delta:  delta,
			Reason: reason,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("reputation", gorm.Expr("reputation + ?", delta)).
			Error; err != nil {
			return err
		}

		return nil
	})
}

// ApplyReputation is the best-effort form used after a content write:
// a failed reputation update is logged and dropped, never retried, and
// never undoes the content change.
func ApplyReputation(userID uint, delta int, reason string) {
	if err := AddReputation(userID, delta, reason); err != nil {
		slog.Warn("reputation update dropped",
			"user_id", userID,
			"delta", delta,
			"reason", reason,
			"error", err,
		)
	}
}

// ReputationHistory returns a user's ledger entries, newest first.
func ReputationHistory(userID uint, limit int) ([]models.ReputationLog, error) {
	var entries []models.ReputationLog
	err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
