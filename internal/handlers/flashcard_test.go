package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"studyhive/internal/db"
	"studyhive/internal/models"
)

func createDeck(t *testing.T, srv *httptest.Server, token string, groupID uint, title string) uint {
	t.Helper()
	status, raw := do(t, srv, http.MethodPost, "/api/flashcards/deck", token, map[string]interface{}{
		"title":   title,
		"groupId": groupID,
	})
	if status != http.StatusCreated {
		t.Fatalf("create deck: status %d, body %s", status, raw)
	}
	return objID(t, decodeObj(t, raw))
}

func addCard(t *testing.T, srv *httptest.Server, token string, deckID uint, front, back string) {
	t.Helper()
	status, raw := do(t, srv, http.MethodPost, "/api/flashcards/card", token, map[string]interface{}{
		"deckId": deckID,
		"front":  front,
		"back":   back,
	})
	if status != http.StatusCreated {
		t.Fatalf("add card: status %d, body %s", status, raw)
	}
}

func TestDeckAndCardLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token, _ := registerUser(t, srv, "alice")
	groupID := createGroup(t, srv, token, "Spanish")

	deckID := createDeck(t, srv, token, groupID, "Vocabulary")
	addCard(t, srv, token, deckID, "hola", "hello")
	addCard(t, srv, token, deckID, "adios", "goodbye")

	// Each card pays one reputation point.
	if got := reputationVia(t, srv, token); got != 2 {
		t.Fatalf("reputation after 2 cards = %d, want 2", got)
	}

	status, raw := do(t, srv, http.MethodGet, fmt.Sprintf("/api/groups/%d/flashcards", groupID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("list decks: status %d, body %s", status, raw)
	}
	decks := decodeList(t, raw)
	if len(decks) != 1 {
		t.Fatalf("decks = %d, want 1", len(decks))
	}
	cards := decks[0]["cards"].([]interface{})
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	if cards[0].(map[string]interface{})["front"] != "hola" {
		t.Fatalf("cards out of insertion order: %s", raw)
	}
}

func TestDeleteDeckCascadesToCards(t *testing.T) {
	srv := newTestServer(t)
	aliceToken, _ := registerUser(t, srv, "alice")
	bobToken, _ := registerUser(t, srv, "bob")
	groupID := createGroup(t, srv, aliceToken, "History")
	joinGroup(t, srv, bobToken, groupID)

	deckID := createDeck(t, srv, aliceToken, groupID, "Dates")
	addCard(t, srv, aliceToken, deckID, "1066", "Battle of Hastings")

	path := fmt.Sprintf("/api/flashcards/deck/%d", deckID)

	status, _ := do(t, srv, http.MethodDelete, path, bobToken, nil)
	if status != http.StatusForbidden {
		t.Fatalf("non-creator delete: status %d, want 403", status)
	}

	status, raw := do(t, srv, http.MethodDelete, path, aliceToken, nil)
	if status != http.StatusOK {
		t.Fatalf("creator delete: status %d, body %s", status, raw)
	}

	var cardCount int64
	db.DB.Model(&models.Card{}).Where("deck_id = ?", deckID).Count(&cardCount)
	if cardCount != 0 {
		t.Fatalf("orphaned cards = %d, want 0", cardCount)
	}

	status, raw = do(t, srv, http.MethodGet, fmt.Sprintf("/api/groups/%d/flashcards", groupID), aliceToken, nil)
	if status != http.StatusOK {
		t.Fatalf("list decks: status %d", status)
	}
	if got := len(decodeList(t, raw)); got != 0 {
		t.Fatalf("decks after delete = %d, want 0", got)
	}
}

func TestAddCardToMissingDeck(t *testing.T) {
	srv := newTestServer(t)
	token, _ := registerUser(t, srv, "alice")

	status, _ := do(t, srv, http.MethodPost, "/api/flashcards/card", token, map[string]interface{}{
		"deckId": 9999,
		"front":  "a",
		"back":   "b",
	})
	if status != http.StatusNotFound {
		t.Fatalf("missing deck: status %d, want 404", status)
	}
}
