package messaging

import "github.com/hilthontt/showdown/internal/domain"

const (
	MatchesQueue    = "matches"
	DeadLetterQueue = "dead_letter_queue"
)

// MatchEventData is the payload carried inside an AmqpMessage for every
// room event. Result is set only on round.resolved.
type MatchEventData struct {
	Room   string              `json:"room"`
	Player string              `json:"player,omitempty"`
	Seated int                 `json:"seated,omitempty"`
	Reason string              `json:"reason,omitempty"`
	Result *domain.RoundResult `json:"result,omitempty"`
}
