package db

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"songscli/config"
	"songscli/logger"
)

const (
	songsCollection   = "songs"
	historyCollection = "history"
)

// Store manages the MongoDB connection and collection handles shared by the
// repositories for the lifetime of one connected session.
type Store struct {
	cfg       *config.Config
	client    *mongo.Client
	songs     *mongo.Collection
	history   *mongo.Collection
	connected bool
}

// NewStore creates an unconnected Store for the given configuration.
func NewStore(cfg *config.Config) *Store {
	return &Store{cfg: cfg}
}

// Connect establishes the connection, verifies it with a ping and ensures
// the collection indexes exist. Index creation is best-effort: a failure is
// logged as a warning and does not fail Connect.
func (s *Store) Connect(ctx context.Context) error {
	if strings.TrimSpace(s.cfg.MongoURI) == "" {
		return &ConnectionError{Err: errMissingURI}
	}

	logger.Debug("connecting to store",
		logger.String("database", s.cfg.DBName),
		logger.Duration("connect_timeout", s.cfg.ConnectTimeout))

	opts := options.Client().
		ApplyURI(s.cfg.MongoURI).
		SetConnectTimeout(s.cfg.ConnectTimeout).
		SetServerSelectionTimeout(s.cfg.ServerSelectionTimeout).
		SetSocketTimeout(s.cfg.SocketTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return &ConnectionError{Err: err}
	}

	pingCtx, cancel := context.WithTimeout(ctx, s.cfg.ServerSelectionTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return &ConnectionError{Err: err}
	}

	database := client.Database(s.cfg.DBName)
	s.client = client
	s.songs = database.Collection(songsCollection)
	s.history = database.Collection(historyCollection)
	s.connected = true

	s.ensureIndexes(ctx)

	logger.Debug("connected to store", logger.String("database", s.cfg.DBName))
	return nil
}

// ensureIndexes creates the collection indexes. CreateMany is idempotent on
// the server side, so reconnecting is harmless.
func (s *Store) ensureIndexes(ctx context.Context) {
	songIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "artist", Value: 1}}},
		{Keys: bson.D{{Key: "username", Value: 1}}},
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "title", Value: 1}, {Key: "artist", Value: 1}}},
	}
	if _, err := s.songs.Indexes().CreateMany(ctx, songIndexes); err != nil {
		logger.Warn("failed to create songs indexes", logger.ErrorField(err))
	}

	historyIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}},
		{Keys: bson.D{{Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "username", Value: 1}, {Key: "timestamp", Value: -1}}},
	}
	if _, err := s.history.Indexes().CreateMany(ctx, historyIndexes); err != nil {
		logger.Warn("failed to create history indexes", logger.ErrorField(err))
	}
}

// Close releases the connection. It is safe to call when not connected or
// more than once.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	client := s.client
	s.client = nil
	s.songs = nil
	s.history = nil
	s.connected = false

	if err := client.Disconnect(ctx); err != nil {
		return &StoreError{Op: "disconnect", Err: err}
	}
	logger.Debug("store connection closed")
	return nil
}

// Songs returns the songs collection handle, or ErrNotConnected.
func (s *Store) Songs() (*mongo.Collection, error) {
	if !s.connected {
		return nil, ErrNotConnected
	}
	return s.songs, nil
}

// History returns the history collection handle, or ErrNotConnected.
func (s *Store) History() (*mongo.Collection, error) {
	if !s.connected {
		return nil, ErrNotConnected
	}
	return s.history, nil
}

// WithStore runs fn against a freshly connected Store and guarantees the
// connection is released on every exit path.
func WithStore(ctx context.Context, cfg *config.Config, fn func(*Store) error) error {
	store := NewStore(cfg)
	if err := store.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			logger.Warn("failed to close store", logger.ErrorField(err))
		}
	}()

	return fn(store)
}
