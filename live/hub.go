// Package live pushes order activity to connected admin panels over
// websockets: new checkouts, status changes, and dashboard refreshes.
package live

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/felizhandmade/feliz-store/models"
	"github.com/felizhandmade/feliz-store/utils"
)

const (
	EventOrderCreated    = "order_created"
	EventOrderUpdate     = "order_update"
	EventOrderDeleted    = "order_deleted"
	EventDashboardUpdate = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type Hub struct {
	clients map[*websocket.Conn]struct{}
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]struct{}),
}

func RegisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = struct{}{}
}

func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{Event: EventOrderCreated, Data: order})
}

func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

func BroadcastOrderDeleted(orderID string) {
	broadcast(Message{Event: EventOrderDeleted, Data: map[string]string{"id": orderID}})
}

func BroadcastDashboardUpdate(data interface{}) {
	broadcast(Message{Event: EventDashboardUpdate, Data: data})
}

// broadcast is best-effort: a failed client write is logged and skipped, the
// order flow never depends on it.
func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("marshal live message: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("write live message: %v", err)
		}
	}
}
