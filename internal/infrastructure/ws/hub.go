package ws

import (
	"sync"

	"github.com/hilthontt/showdown/internal/infrastructure/configs"
	"github.com/hilthontt/showdown/internal/infrastructure/metrics"
)

// Hub fans broadcasts out to every socket subscribed to a topic. Rooms hand
// messages off through Broadcast, which never blocks: the room mutex is held
// at that point and a slow subscriber must not stall the match.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan *WSMessage

	mu     sync.RWMutex
	topics map[string]map[*Client]struct{}
}

func NewHub(cfg configs.HubConfig) *Hub {
	dispatchBuffer := cfg.DispatchBuffer
	if dispatchBuffer <= 0 {
		dispatchBuffer = 256
	}

	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *WSMessage, dispatchBuffer),
		topics:     make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case cl := <-h.register:
			h.addClient(cl)
			metrics.Subscribers.Inc()

		case cl := <-h.unregister:
			if h.removeClient(cl) {
				metrics.Subscribers.Dec()
			}

		case msg := <-h.broadcast:
			h.dispatch(msg)
		}
	}
}

func (h *Hub) Register() chan<- *Client {
	return h.register
}

func (h *Hub) Unregister() chan<- *Client {
	return h.unregister
}

// Broadcast implements domain.Broadcaster. The message is queued for the
// dispatcher; when the queue is full it is dropped and counted.
func (h *Hub) Broadcast(topic, message string) {
	select {
	case h.broadcast <- NewRoomBroadcast(topic, message):
	default:
		metrics.BroadcastsDropped.Inc()
	}
}

// SubscriberCount reports how many sockets are subscribed to a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.topics[topic])
}

func (h *Hub) addClient(cl *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.topics[cl.Room]
	if !ok {
		clients = make(map[*Client]struct{})
		h.topics[cl.Room] = clients
	}
	clients[cl] = struct{}{}
}

func (h *Hub) removeClient(cl *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.topics[cl.Room]
	if !ok {
		return false
	}
	if _, ok := clients[cl]; !ok {
		return false
	}

	delete(clients, cl)
	if len(clients) == 0 {
		delete(h.topics, cl.Room)
	}
	close(cl.Message)

	return true
}

func (h *Hub) dispatch(msg *WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for cl := range h.topics[msg.Room] {
		select {
		case cl.Message <- msg:
		default:
			metrics.BroadcastsDropped.Inc()
		}
	}
}
