package events

import (
	"context"
	"encoding/json"

	"github.com/hilthontt/showdown/internal/domain"
	"github.com/hilthontt/showdown/internal/infrastructure/contracts"
	"github.com/hilthontt/showdown/internal/infrastructure/logging"
	"github.com/hilthontt/showdown/internal/infrastructure/messaging"
	"github.com/rabbitmq/amqp091-go"
)

type auditConsumer struct {
	rabbitmq   *messaging.RabbitMQ
	repository domain.MatchAuditRepository
	logger     logging.Logger
}

func NewAuditConsumer(rabbitmq *messaging.RabbitMQ, repository domain.MatchAuditRepository, logger logging.Logger) *auditConsumer {
	return &auditConsumer{
		rabbitmq:   rabbitmq,
		repository: repository,
		logger:     logger,
	}
}

// Listen drains the matches queue and persists one audit log per event.
// Blocks until the channel closes.
func (c *auditConsumer) Listen() error {
	return c.rabbitmq.ConsumeMessages(messaging.MatchesQueue, func(ctx context.Context, msg amqp091.Delivery) error {
		var message contracts.AmqpMessage
		if err := json.Unmarshal(msg.Body, &message); err != nil {
			c.logger.Error(logging.RabbitMQ, logging.ExternalService, "failed to unmarshal message", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
			})
			return err
		}

		var payload messaging.MatchEventData
		if err := json.Unmarshal(message.Data, &payload); err != nil {
			c.logger.Error(logging.RabbitMQ, logging.ExternalService, "failed to unmarshal event data", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
				logging.RoomName:     message.Room,
			})
			return err
		}

		entry := auditLogFor(msg.RoutingKey, payload)
		if entry == nil {
			c.logger.Warn(logging.RabbitMQ, logging.ExternalService, "unknown routing key, dropping", map[logging.ExtraKey]any{
				"routing_key":    msg.RoutingKey,
				logging.RoomName: message.Room,
			})
			return nil
		}

		if err := c.repository.Log(ctx, entry); err != nil {
			c.logger.Error(logging.Mongo, logging.ExternalService, "failed to persist audit log", map[logging.ExtraKey]any{
				logging.ErrorMessage: err.Error(),
				logging.RoomName:     entry.Room,
			})
			return err
		}

		c.logger.Debug(logging.Match, logging.RoomLifecycle, "audit log persisted", map[logging.ExtraKey]any{
			logging.RoomName: entry.Room,
			"event_type":     string(entry.EventType),
		})

		return nil
	})
}

func auditLogFor(routingKey string, payload messaging.MatchEventData) *domain.MatchAuditLog {
	switch routingKey {
	case contracts.EventRoomCreated:
		return domain.NewRoomCreatedLog(payload.Room)
	case contracts.EventPlayerJoined:
		return domain.NewPlayerJoinedLog(payload.Room, payload.Player, payload.Seated)
	case contracts.EventGameReady:
		return domain.NewGameReadyLog(payload.Room)
	case contracts.EventPlayerMoved:
		return domain.NewPlayerMovedLog(payload.Room, payload.Player)
	case contracts.EventJoinRejected:
		return domain.NewJoinRejectedLog(payload.Room, payload.Player, payload.Reason)
	case contracts.EventRoundResolved:
		if payload.Result == nil {
			return nil
		}
		return domain.NewRoundResolvedLog(payload.Result)
	default:
		return nil
	}
}
