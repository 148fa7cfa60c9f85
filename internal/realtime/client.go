package realtime

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024

	// sendBuffer bounds the per-connection outbound queue; a client
	// that falls this far behind starts losing events.
	sendBuffer = 64
)

// Client is one WebSocket connection. Inbound traffic is limited to
// room-join requests; everything else flows server-to-client.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID uint

	// canJoinGroup gates group-room joins; joins fail silently when it
	// returns false. The fan-out layer itself stays authorization-free.
	canJoinGroup func(groupID uint) bool

	send chan []byte
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uint, canJoinGroup func(groupID uint) bool) *Client {
	return &Client{
		hub:          hub,
		conn:         conn,
		userID:       userID,
		canJoinGroup: canJoinGroup,
		send:         make(chan []byte, sendBuffer),
	}
}

// enqueue hands a marshaled event to the write pump without blocking;
// events for slow clients are dropped.
func (c *Client) enqueue(msg []byte) {
	select {
	case c.send <- msg:
	default:
		slog.Debug("dropping event for slow realtime client", "user_id", c.userID)
	}
}

// inbound is the client-to-server message shape.
type inbound struct {
	Event   string `json:"event"`
	GroupID uint   `json:"group_id"`
}

// Run pumps the connection until it drops, then cleans up room
// membership.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Remove(c)
		c.conn.Close()
		close(c.send)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("realtime read error", "user_id", c.userID, "error", err)
			}
			return
		}

		var msg inbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		switch msg.Event {
		case "join_group":
			if c.canJoinGroup != nil && !c.canJoinGroup(msg.GroupID) {
				slog.Debug("rejected group room join", "user_id", c.userID, "group_id", msg.GroupID)
				continue
			}
			c.hub.JoinGroupRoom(c, msg.GroupID)
		case "join_user_room":
			// Identity comes from the authenticated connection, not
			// the payload; a client can only join its own room.
			c.hub.JoinUserRoom(c, c.userID)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
