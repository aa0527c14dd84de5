package controller

import (
	"net/http"
	"time"

	"github.com/ed-builder/paintboard/pkg/log"
	"github.com/ed-builder/paintboard/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// viewers are anonymous and read-only, any origin may watch
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GetStream upgrades to a websocket viewer connection: one init snapshot,
// then a pixel event per committed draw, in commit order.
func GetStream(ctx *gin.Context) {
	hub, err := service.DefaultHub()
	if err != nil {
		respondError(ctx, err)
		return
	}
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Warn("websocket upgrade from %v: %v", ctx.ClientIP(), err)
		return
	}
	viewer, err := hub.Register()
	if err != nil {
		log.Error("register viewer: %v", err)
		_ = conn.Close()
		return
	}

	// write pump: channel closed by the hub ends the loop
	go func() {
		defer conn.Close()
		for msg := range viewer.Events() {
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				hub.Unregister(viewer)
				return
			}
		}
	}()

	// read pump: viewers send nothing meaningful, reading only detects close
	go func() {
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(viewer)
				return
			}
		}
	}()
}
