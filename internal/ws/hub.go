package ws

import (
	"encoding/json"
	"log"
)

// Message is the envelope pushed to every feed subscriber.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const (
	TypePostCreated  = "post_created"
	TypeCommentAdded = "comment_added"
)

// Hub fans out messages to the connected websocket clients. Run owns the
// client set; everything else talks to it through channels.
type Hub struct {
	clients    map[*Client]bool
	Broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case msg := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow client, drop it.
					delete(h.clients, client)
					close(client.send)
				}
			}
		case <-h.done:
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		}
	}
}

// Stop terminates Run and disconnects all clients.
func (h *Hub) Stop() {
	close(h.done)
}

// Publish encodes a message and queues it for broadcast. It never blocks:
// when the queue is full the message is dropped.
func (h *Hub) Publish(msgType string, data interface{}) {
	if h == nil {
		return
	}
	payload, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		log.Printf("Error marshalling WS message: %v", err)
		return
	}
	select {
	case h.Broadcast <- payload:
	default:
		log.Printf("WS broadcast queue full, dropping %s message", msgType)
	}
}
