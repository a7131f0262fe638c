package contracts

// AmqpMessage is the message structure for AMQP.
type AmqpMessage struct {
	Room string `json:"room"`
	Data []byte `json:"data"`
}

// Routing keys - using consistent event patterns
const (
	EventRoomCreated   = "room.created"
	EventPlayerJoined  = "player.joined"
	EventGameReady     = "game.ready"
	EventPlayerMoved   = "player.moved"
	EventRoundResolved = "round.resolved"
	EventJoinRejected  = "join.rejected"
)
