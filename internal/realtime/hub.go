// Package realtime fans content-change notifications out to connected
// WebSocket clients. Delivery is fire-and-forget, at-most-once: events
// published to an empty room vanish, and clients are expected to
// re-fetch full state when they (re)connect. The durable store, not
// the hub, is the source of truth.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Server-to-client event names.
const (
	EventNewPost        = "new_post"
	EventPostUpdated    = "post_updated"
	EventPrivateMessage = "private_message"
)

// Envelope is the wire shape of every server-to-client event.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub tracks two disjoint room namespaces: group rooms keyed by group
// id and user rooms keyed by user id. A connection can sit in any
// number of group rooms plus its own user room.
type Hub struct {
	mu         sync.RWMutex
	groupRooms map[uint]map[*Client]struct{}
	userRooms  map[uint]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		groupRooms: make(map[uint]map[*Client]struct{}),
		userRooms:  make(map[uint]map[*Client]struct{}),
	}
}

// JoinGroupRoom adds the client to a group room. Idempotent.
func (h *Hub) JoinGroupRoom(c *Client, groupID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.groupRooms[groupID]
	if !ok {
		room = make(map[*Client]struct{})
		h.groupRooms[groupID] = room
	}
	room[c] = struct{}{}
}

// JoinUserRoom adds the client to a user's personal room. Idempotent;
// a user with several connections has them all in the same room.
func (h *Hub) JoinUserRoom(c *Client, userID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.userRooms[userID]
	if !ok {
		room = make(map[*Client]struct{})
		h.userRooms[userID] = room
	}
	room[c] = struct{}{}
}

// Remove drops the client from every room. Called on disconnect.
func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, room := range h.groupRooms {
		delete(room, c)
		if len(room) == 0 {
			delete(h.groupRooms, id)
		}
	}
	for id, room := range h.userRooms {
		delete(room, c)
		if len(room) == 0 {
			delete(h.userRooms, id)
		}
	}
}

// PublishToGroup delivers the event to every connection currently in
// the group's room. Never blocks the caller: enqueueing to each client
// is non-blocking and an empty room is a no-op.
func (h *Hub) PublishToGroup(groupID uint, event string, payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.publish(h.groupRooms[groupID], event, payload)
}

// PublishToUser delivers the event to all of one user's connections.
func (h *Hub) PublishToUser(userID uint, event string, payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	h.publish(h.userRooms[userID], event, payload)
}

func (h *Hub) publish(room map[*Client]struct{}, event string, payload interface{}) {
	if len(room) == 0 {
		return
	}
	msg, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		slog.Warn("dropping unmarshalable realtime event", "event", event, "error", err)
		return
	}
	for c := range room {
		c.enqueue(msg)
	}
}
