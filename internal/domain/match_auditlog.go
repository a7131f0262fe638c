package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type MatchEventType string

const (
	EventRoomCreated   MatchEventType = "room_created"
	EventPlayerJoined  MatchEventType = "player_joined"
	EventGameReady     MatchEventType = "game_ready"
	EventPlayerMoved   MatchEventType = "player_moved"
	EventRoundResolved MatchEventType = "round_resolved"
	EventJoinRejected  MatchEventType = "join_rejected"
)

type MatchAuditLog struct {
	ID        string         `bson:"_id" json:"id"`
	Room      string         `bson:"room" json:"room"`
	EventType MatchEventType `bson:"event_type" json:"eventType"`
	Timestamp time.Time      `bson:"timestamp" json:"timestamp"`
	Metadata  map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

type MatchAuditRepository interface {
	Log(ctx context.Context, log *MatchAuditLog) error
	GetByRoom(ctx context.Context, room string, limit int) ([]MatchAuditLog, error)
	GetByEventType(ctx context.Context, eventType MatchEventType, from, to time.Time) ([]MatchAuditLog, error)
	DeleteOlderThan(ctx context.Context, before time.Time) error
	EnsureIndexes(ctx context.Context) error
}

func NewRoomCreatedLog(room string) *MatchAuditLog {
	return &MatchAuditLog{
		ID:        uuid.NewString(),
		Room:      room,
		EventType: EventRoomCreated,
		Timestamp: time.Now(),
		Metadata:  map[string]any{},
	}
}

func NewPlayerJoinedLog(room, player string, seated int) *MatchAuditLog {
	return &MatchAuditLog{
		ID:        uuid.NewString(),
		Room:      room,
		EventType: EventPlayerJoined,
		Timestamp: time.Now(),
		Metadata: map[string]any{
			"player": player,
			"seated": seated,
		},
	}
}

func NewGameReadyLog(room string) *MatchAuditLog {
	return &MatchAuditLog{
		ID:        uuid.NewString(),
		Room:      room,
		EventType: EventGameReady,
		Timestamp: time.Now(),
		Metadata:  map[string]any{},
	}
}

func NewPlayerMovedLog(room, player string) *MatchAuditLog {
	return &MatchAuditLog{
		ID:        uuid.NewString(),
		Room:      room,
		EventType: EventPlayerMoved,
		Timestamp: time.Now(),
		Metadata: map[string]any{
			"player": player,
		},
	}
}

func NewRoundResolvedLog(result *RoundResult) *MatchAuditLog {
	return &MatchAuditLog{
		ID:        uuid.NewString(),
		Room:      result.Room,
		EventType: EventRoundResolved,
		Timestamp: time.Now(),
		Metadata: map[string]any{
			"winner":  result.Winner,
			"draw":    result.Draw,
			"outcome": result.Outcome(),
		},
	}
}

func NewJoinRejectedLog(room, player, reason string) *MatchAuditLog {
	return &MatchAuditLog{
		ID:        uuid.NewString(),
		Room:      room,
		EventType: EventJoinRejected,
		Timestamp: time.Now(),
		Metadata: map[string]any{
			"player": player,
			"reason": reason,
		},
	}
}
