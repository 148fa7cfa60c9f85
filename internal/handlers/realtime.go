package handlers

import (
	"log/slog"
	"net/http"

	"studyhive/internal/middleware"
	"studyhive/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeHandler struct {
	hub      *realtime.Hub
	upgrader websocket.Upgrader
}

func NewRealtimeHandler(hub *realtime.Hub) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect cross-origin in dev setups; the
			// bearer token is the actual gate.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection and pumps it until it drops. Auth is
// via the token query parameter (WebSocket clients cannot set
// headers) or the Authorization header.
func (h *RealtimeHandler) Serve(c *gin.Context) {
	tokenString, err := middleware.TokenFromRequest(c)
	if err != nil {
		clientError(c, http.StatusUnauthorized, err.Error())
		return
	}
	claims, err := middleware.ParseToken(tokenString)
	if err != nil {
		clientError(c, http.StatusUnauthorized, err.Error())
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}

	userID := claims.UserID
	client := realtime.NewClient(h.hub, conn, userID, func(groupID uint) bool {
		return IsGroupMember(userID, groupID)
	})
	client.Run()
}
