package ws

type WSMessage struct {
	Type string `json:"type"`
	Room string `json:"room"`
	Data any    `json:"data"`
}

// Payload structs
type BroadcastPayload struct {
	Text string `json:"text"`
}

type ErrorPayload struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Retry   bool   `json:"retry,omitempty"`
}

// ChoiceFrame is the inbound frame a subscribed player sends to submit a
// move without a separate HTTP round trip. Player defaults to the name the
// socket subscribed with.
type ChoiceFrame struct {
	Player string `json:"player,omitempty"`
	Choice string `json:"choice"`
}

func NewRoomBroadcast(room, text string) *WSMessage {
	return &WSMessage{
		Type: RoomBroadcast,
		Room: room,
		Data: BroadcastPayload{
			Text: text,
		},
	}
}

func NewError(room, message string) *WSMessage {
	return &WSMessage{
		Type: ErrorEvent,
		Room: room,
		Data: ErrorPayload{
			Message: message,
			Retry:   false,
		},
	}
}
