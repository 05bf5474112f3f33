// handlers/events.go - Live reward feed over WebSocket
package handlers

import (
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RewardEvent is pushed to connected clients when something worth celebrating
// happens: a level-up, an achievement grant, or a quest completion.
type RewardEvent struct {
	Type     string `json:"type"` // level_up, achievement, quest
	UserID   uint   `json:"user_id"`
	Nickname string `json:"nickname"`
	Title    string `json:"title,omitempty"`
	Level    int    `json:"level,omitempty"`
}

var (
	eventClients = make(map[*websocket.Conn]struct{})
	eventMu      sync.Mutex
)

// EventsUpgrade gates the /ws/events route to WebSocket upgrade requests.
func EventsUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// EventsSocket keeps the connection registered until the client goes away.
// Clients only listen; inbound messages are drained and discarded.
var EventsSocket = websocket.New(func(conn *websocket.Conn) {
	eventMu.Lock()
	eventClients[conn] = struct{}{}
	eventMu.Unlock()

	defer func() {
		eventMu.Lock()
		delete(eventClients, conn)
		eventMu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
})

// BroadcastReward pushes an event to every connected client. Dead connections
// are dropped on write failure.
func BroadcastReward(ev RewardEvent) {
	eventMu.Lock()
	defer eventMu.Unlock()

	for conn := range eventClients {
		if err := conn.WriteJSON(ev); err != nil {
			log.Printf("Dropping event client: %v", err)
			delete(eventClients, conn)
			conn.Close()
		}
	}
}
