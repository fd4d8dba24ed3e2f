package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/felizhandmade/feliz-store/live"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveHandler upgrades an admin panel connection and keeps it registered
// until the read loop breaks. The panel only listens; inbound messages are
// drained and discarded.
func LiveHandler(c *gin.Context) {
	if !c.GetBool("admin") {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	live.RegisterClient(ws)

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	live.UnregisterClient(ws)
}
