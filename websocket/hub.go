package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// BookingNotification is pushed to a property owner's dashboard the moment
// one of their properties is booked or a booking changes status.
type BookingNotification struct {
	OwnerID    uuid.UUID `json:"-"`
	Event      string    `json:"event"`
	BookingID  uuid.UUID `json:"booking_id"`
	Reference  string    `json:"reference"`
	Property   string    `json:"property"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Notify = make(chan *BookingNotification, 32)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case notification := <-Notify:
			clientsMu.RLock()
			conn, ok := clients[notification.OwnerID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(notification); err != nil {
				log.Printf("Error pushing notification to client %s: %v", notification.OwnerID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, notification.OwnerID)
				clientsMu.Unlock()
			}
		}
	}
}
