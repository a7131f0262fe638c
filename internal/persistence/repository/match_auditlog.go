package repository

import (
	"context"
	"time"

	"github.com/hilthontt/showdown/internal/domain"
	"github.com/hilthontt/showdown/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type matchAuditLogRepository struct {
	db *mongo.Database
}

func NewMatchAuditLogRepository(db *mongo.Database) domain.MatchAuditRepository {
	return &matchAuditLogRepository{
		db: db,
	}
}

func (r *matchAuditLogRepository) Log(ctx context.Context, log *domain.MatchAuditLog) error {
	collection := r.db.Collection(db.MatchAuditLogsCollection)

	_, err := collection.InsertOne(ctx, log)
	return err
}

func (r *matchAuditLogRepository) GetByRoom(ctx context.Context, room string, limit int) ([]domain.MatchAuditLog, error) {
	collection := r.db.Collection(db.MatchAuditLogsCollection)

	filter := bson.M{"room": room}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []domain.MatchAuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *matchAuditLogRepository) GetByEventType(ctx context.Context, eventType domain.MatchEventType, from time.Time, to time.Time) ([]domain.MatchAuditLog, error) {
	collection := r.db.Collection(db.MatchAuditLogsCollection)

	filter := bson.M{
		"event_type": eventType,
		"timestamp": bson.M{
			"$gte": from,
			"$lte": to,
		},
	}

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []domain.MatchAuditLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *matchAuditLogRepository) DeleteOlderThan(ctx context.Context, before time.Time) error {
	collection := r.db.Collection(db.MatchAuditLogsCollection)

	filter := bson.M{
		"timestamp": bson.M{
			"$lt": before,
		},
	}

	_, err := collection.DeleteMany(ctx, filter)
	return err
}

func (r *matchAuditLogRepository) EnsureIndexes(ctx context.Context) error {
	collection := r.db.Collection(db.MatchAuditLogsCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "room", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		{
			Keys: bson.D{
				{Key: "event_type", Value: 1},
				{Key: "timestamp", Value: -1},
			},
		},
		{
			Keys:    bson.D{{Key: "timestamp", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(7776000), // 90 days TTL
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
