package services

import (
	"testing"

	"studyhive/internal/db"
	"studyhive/internal/models"
	"studyhive/internal/testutil"
)

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
	}
	if err := db.DB.Create(u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func reputationOf(t *testing.T, userID uint) int {
	t.Helper()
	var u models.User
	if err := db.DB.First(&u, userID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	return u.Reputation
}

func TestAddReputationKeepsLedgerAndTotalInSync(t *testing.T) {
	testutil.SetupDB(t)
	u := createTestUser(t, "alice")

	if err := AddReputation(u.ID, DeltaPostCreate, ReasonPostCreate); err != nil {
		t.Fatalf("AddReputation: %v", err)
	}
	if err := AddReputation(u.ID, DeltaCommentCreate, ReasonCommentCreate); err != nil {
		t.Fatalf("AddReputation: %v", err)
	}
	if err := AddReputation(u.ID, DeltaCardAdd, ReasonCardAdd); err != nil {
		t.Fatalf("AddReputation: %v", err)
	}

	if got := reputationOf(t, u.ID); got != 8 {
		t.Fatalf("reputation = %d, want 8", got)
	}

	entries, err := ReputationHistory(u.ID, 100)
	if err != nil {
		t.Fatalf("ReputationHistory: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ledger entries = %d, want 3", len(entries))
	}
	sum := 0
	for _, e := range entries {
		sum += e.Delta
	}
	if sum != 8 {
		t.Fatalf("ledger sum = %d, want 8", sum)
	}
}

func TestDeleteDeltasReturnToBaseline(t *testing.T) {
	testutil.SetupDB(t)
	u := createTestUser(t, "bob")

	if err := AddReputation(u.ID, DeltaPostCreate, ReasonPostCreate); err != nil {
		t.Fatalf("AddReputation: %v", err)
	}
	if err := AddReputation(u.ID, DeltaPostDelete, ReasonPostDelete); err != nil {
		t.Fatalf("AddReputation: %v", err)
	}

	if got := reputationOf(t, u.ID); got != 0 {
		t.Fatalf("reputation = %d, want 0 after create then delete", got)
	}

	// The ledger keeps both movements, the total nets out.
	entries, err := ReputationHistory(u.ID, 100)
	if err != nil {
		t.Fatalf("ReputationHistory: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(entries))
	}
}

func TestReputationCanGoNegative(t *testing.T) {
	testutil.SetupDB(t)
	u := createTestUser(t, "carol")

	if err := AddReputation(u.ID, DeltaCommentDelete, ReasonCommentDelete); err != nil {
		t.Fatalf("AddReputation: %v", err)
	}
	if got := reputationOf(t, u.ID); got != -2 {
		t.Fatalf("reputation = %d, want -2", got)
	}
}
