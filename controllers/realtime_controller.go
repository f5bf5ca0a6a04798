package controllers

import (
	"net/http"
	"time"

	"github.com/nst-sdc/Diet-Planner/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// GET /api/realtime/ws streams diary and goal events to the caller's open
// sockets until the client disconnects.
func (ctl *RealtimeController) EventsWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	ctl.hub.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Write(websocket.PingMessage, nil); err != nil {
				ctl.hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends when the client closes or errors
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			ctl.hub.Unregister(cl)
			return
		}
	}
}
