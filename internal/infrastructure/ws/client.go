package ws

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ChoiceSink accepts a move arriving over a live socket. The handler layer
// implements it so socket submissions take the same path as HTTP ones.
type ChoiceSink interface {
	Submit(room, player, choice string) error
}

type Client struct {
	conn    *websocket.Conn
	Message chan *WSMessage
	ID      string `json:"id"`
	Room    string `json:"room"`
	Player  string `json:"player"`
}

func NewClient(conn *websocket.Conn, room, player string, buffer int) *Client {
	if buffer <= 0 {
		buffer = 64
	}

	return &Client{
		conn:    conn,
		Message: make(chan *WSMessage, buffer), // buffered to avoid dead-locks on slow clients
		ID:      uuid.NewString(),
		Room:    room,
		Player:  player,
	}
}

func (c *Client) ReadMessage(hub *Hub, sink ChoiceSink) {
	defer func() {
		hub.Unregister() <- c
		_ = c.conn.Close()
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ws read error (client %s): %v", c.ID, err)
			}
			break
		}

		var frame ChoiceFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.trySend(NewError(c.Room, "malformed frame"))
			continue
		}

		player := frame.Player
		if player == "" {
			player = c.Player
		}

		if err := sink.Submit(c.Room, player, frame.Choice); err != nil {
			c.trySend(NewError(c.Room, err.Error()))
		}
	}
}

func (c *Client) WriteMessage() {
	defer func() {
		_ = c.conn.Close()
	}()

	for msg := range c.Message {
		if err := c.conn.WriteJSON(msg); err != nil {
			log.Printf("ws write error (client %s): %v", c.ID, err)
			break
		}
	}
}

// trySend delivers an error frame to this client only, dropping it rather
// than blocking the read loop.
func (c *Client) trySend(msg *WSMessage) {
	select {
	case c.Message <- msg:
	default:
	}
}
