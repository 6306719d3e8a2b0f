package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches one upgraded connection to the hub.
func ServeWs(hub *Hub, c *websocket.Conn) {
	client := &Client{Hub: hub, Conn: c, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // blocks for the connection lifetime
}
