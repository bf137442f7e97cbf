package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"

	"github.com/cityhail/ride-backend/pkg/logger"
	"github.com/cityhail/ride-backend/pkg/websocket"
)

var upgrader = gorilla.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // no origin restriction, mirrors the open CORS policy
	},
}

// HandleWebSocket handles GET /ws. Connected clients receive every
// ride lifecycle event.
func (h *Handlers) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Error("Failed to upgrade to WebSocket", logger.Err(err))
		return
	}

	client := websocket.NewClient(h.Hub, conn, h.Logger)
	h.Hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
