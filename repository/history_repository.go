package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"songscli/db"
	"songscli/logger"
	"songscli/model"
)

// DefaultHistoryLimit is used when the caller does not specify how many
// entries to read back.
const DefaultHistoryLimit = 10

// HistoryRepository defines the interface for the append-only audit trail.
// Entries are never updated or deleted.
type HistoryRepository interface {
	CreateEntry(ctx context.Context, entry *model.HistoryEntry) (primitive.ObjectID, error)
	GetHistory(ctx context.Context, username string, limit int64) ([]*model.HistoryEntry, error)
}

// mongoHistoryRepository implements HistoryRepository over a connected Store.
type mongoHistoryRepository struct {
	store *db.Store
}

// NewMongoHistoryRepository creates a new mongoHistoryRepository.
func NewMongoHistoryRepository(store *db.Store) HistoryRepository {
	return &mongoHistoryRepository{store: store}
}

// CreateEntry appends an entry to the trail and returns the assigned ID.
func (r *mongoHistoryRepository) CreateEntry(ctx context.Context, entry *model.HistoryEntry) (primitive.ObjectID, error) {
	coll, err := r.store.History()
	if err != nil {
		return primitive.NilObjectID, err
	}

	res, err := coll.InsertOne(ctx, entry.Document())
	if err != nil {
		return primitive.NilObjectID, &db.StoreError{Op: "insert history entry", Err: err}
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, &db.StoreError{Op: "insert history entry", Err: errors.New("unexpected inserted ID type")}
	}
	logger.Debug("history entry added",
		logger.String("entry_id", id.Hex()),
		logger.String("action", entry.Action))
	return id, nil
}

// GetHistory returns the user's most recent entries, newest first. A
// non-positive limit falls back to DefaultHistoryLimit.
func (r *mongoHistoryRepository) GetHistory(ctx context.Context, username string, limit int64) ([]*model.HistoryEntry, error) {
	coll, err := r.store.History()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := coll.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, &db.StoreError{Op: "find history", Err: err}
	}

	entries := make([]*model.HistoryEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, &db.StoreError{Op: "decode history", Err: err}
	}
	return entries, nil
}
