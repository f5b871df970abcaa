package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// TaskEvent dikirim ke semua dashboard yang terkoneksi setiap kali
// ada task yang dibuat atau dihapus.
type TaskEvent struct {
	Action   string `json:"action"`
	TaskID   int    `json:"task_id"`
	TaskName string `json:"task_name,omitempty"`
}

// Conn adalah bagian dari *websocket.Conn yang dipakai Hub.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client merepresentasikan klien WebSocket.
type Client struct {
	Conn Conn
	Mu   sync.Mutex
}

// Hub mengelola koneksi WebSocket.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

// NewHub membuat instance Hub baru.
func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// BroadcastTask mengirim TaskEvent ke semua client. Aman dipanggil
// dengan Hub nil (misalnya di test yang tidak memakai websocket).
func (h *Hub) BroadcastTask(event TaskEvent) {
	if h == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	h.Broadcast <- payload
}

// Run menjalankan loop Hub untuk mengelola register, unregister, dan Broadcast.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				client.Conn.Close()
			}
		case message := <-h.Broadcast:
			var failed []*Client
			for client := range h.Clients {
				client.Mu.Lock()
				err := client.Conn.WriteMessage(websocket.TextMessage, message)
				client.Mu.Unlock()
				if err != nil {
					failed = append(failed, client)
				}
			}
			// koneksi yang gagal ditulis dilepas langsung di sini;
			// kirim ke h.Unregister dari goroutine ini sendiri akan
			// deadlock karena receiver-nya ya loop ini juga
			for _, client := range failed {
				delete(h.Clients, client)
				client.Conn.Close()
			}
		}
	}
}
