package rooms

import "github.com/hilthontt/showdown/internal/domain"

// createRoomRequest represents the request to create a new match room
type createRoomRequest struct {
	Name string `json:"name" example:"arena-1" minLength:"1"` // Room name, also used as its broadcast topic
}

// createRoomResponse represents the response after creating a room
type createRoomResponse struct {
	Name string `json:"name" example:"arena-1"` // Name of the created room
}

// listRoomsResponse lists every live room by name
type listRoomsResponse struct {
	Rooms []string `json:"rooms"` // Names of all rooms
}

// joinRoomRequest represents the request to take a seat in a room
type joinRoomRequest struct {
	Player string `json:"player" example:"alice" minLength:"1"` // Player name, unique within the room
}

// joinRoomResponse represents the state of the seat after joining
type joinRoomResponse struct {
	Room   string `json:"room" example:"arena-1"` // Room joined
	Player string `json:"player" example:"alice"` // Player seated
	Seated int    `json:"seated" example:"2"`     // Number of seated players after the join
	Ready  bool   `json:"ready" example:"true"`   // Whether the room now has both players
}

// submitChoiceRequest represents one move in the current round
type submitChoiceRequest struct {
	Player string `json:"player" example:"alice"` // Player making the move
	Choice string `json:"choice" example:"rock"`  // One of rock, paper, scissors
}

// submitChoiceResponse acknowledges a move and carries the round result if
// this move completed the round
type submitChoiceResponse struct {
	Room     string              `json:"room" example:"arena-1"`
	Player   string              `json:"player" example:"alice"`
	Choice   string              `json:"choice" example:"rock"`
	Resolved bool                `json:"resolved" example:"false"` // Whether this move resolved the round
	Result   *domain.RoundResult `json:"result,omitempty"`         // Set only when Resolved is true
}
