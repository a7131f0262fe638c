package events

import (
	"context"
	"encoding/json"

	"github.com/hilthontt/showdown/internal/domain"
	"github.com/hilthontt/showdown/internal/infrastructure/contracts"
	"github.com/hilthontt/showdown/internal/infrastructure/messaging"
)

type MatchPublisher struct {
	rabbitmq *messaging.RabbitMQ
}

func NewMatchPublisher(rabbitmq *messaging.RabbitMQ) *MatchPublisher {
	return &MatchPublisher{
		rabbitmq: rabbitmq,
	}
}

func (p *MatchPublisher) PublishRoomCreated(ctx context.Context, room string) error {
	payload := messaging.MatchEventData{
		Room: room,
	}

	matchEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventRoomCreated, contracts.AmqpMessage{
		Room: room,
		Data: matchEventJSON,
	})
}

func (p *MatchPublisher) PublishPlayerJoined(ctx context.Context, room, player string, seated int) error {
	payload := messaging.MatchEventData{
		Room:   room,
		Player: player,
		Seated: seated,
	}

	matchEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventPlayerJoined, contracts.AmqpMessage{
		Room: room,
		Data: matchEventJSON,
	})
}

func (p *MatchPublisher) PublishJoinRejected(ctx context.Context, room, player, reason string) error {
	payload := messaging.MatchEventData{
		Room:   room,
		Player: player,
		Reason: reason,
	}

	matchEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventJoinRejected, contracts.AmqpMessage{
		Room: room,
		Data: matchEventJSON,
	})
}

func (p *MatchPublisher) PublishGameReady(ctx context.Context, room string) error {
	payload := messaging.MatchEventData{
		Room: room,
	}

	matchEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventGameReady, contracts.AmqpMessage{
		Room: room,
		Data: matchEventJSON,
	})
}

func (p *MatchPublisher) PublishPlayerMoved(ctx context.Context, room, player string) error {
	payload := messaging.MatchEventData{
		Room:   room,
		Player: player,
	}

	matchEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventPlayerMoved, contracts.AmqpMessage{
		Room: room,
		Data: matchEventJSON,
	})
}

func (p *MatchPublisher) PublishRoundResolved(ctx context.Context, result *domain.RoundResult) error {
	payload := messaging.MatchEventData{
		Room:   result.Room,
		Result: result,
	}

	matchEventJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.rabbitmq.PublishMessage(ctx, contracts.EventRoundResolved, contracts.AmqpMessage{
		Room: result.Room,
		Data: matchEventJSON,
	})
}
