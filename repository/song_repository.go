package repository

import (
	"context"
	"errors"
	"reflect"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"songscli/db"
	"songscli/logger"
	"songscli/model"
)

// SongRepository defines the interface for song data operations. Every
// operation except the all-users listing is scoped to a username; a song
// owned by someone else is indistinguishable from a missing one.
type SongRepository interface {
	CreateSong(ctx context.Context, song *model.Song) (primitive.ObjectID, error)
	GetSongs(ctx context.Context, username string, limit int64) ([]*model.Song, error)
	SearchSongs(ctx context.Context, username, term string) ([]*model.Song, error)
	GetSongByID(ctx context.Context, username, songID string) (*model.Song, error)
	UpdateSong(ctx context.Context, username, songID string, update model.SongUpdate) (bool, error)
	DeleteSong(ctx context.Context, username, songID string) (*model.Song, error)
}

// mongoSongRepository implements SongRepository over a connected Store.
type mongoSongRepository struct {
	store *db.Store
}

// NewMongoSongRepository creates a new mongoSongRepository.
func NewMongoSongRepository(store *db.Store) SongRepository {
	return &mongoSongRepository{store: store}
}

// CreateSong adds a new song to the store and returns the assigned ID.
func (r *mongoSongRepository) CreateSong(ctx context.Context, song *model.Song) (primitive.ObjectID, error) {
	coll, err := r.store.Songs()
	if err != nil {
		return primitive.NilObjectID, err
	}

	res, err := coll.InsertOne(ctx, song.Document())
	if err != nil {
		return primitive.NilObjectID, db.ClassifyWriteErr("insert song", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, &db.StoreError{Op: "insert song", Err: errors.New("unexpected inserted ID type")}
	}
	logger.Debug("song created",
		logger.String("song_id", id.Hex()),
		logger.String("title", song.Title))
	return id, nil
}

// GetSongs returns songs ordered by creation time, newest first. An empty
// username means "across all users" and is only ever passed by the explicit
// all-users listing. A positive limit caps the result count.
func (r *mongoSongRepository) GetSongs(ctx context.Context, username string, limit int64) ([]*model.Song, error) {
	coll, err := r.store.Songs()
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if username != "" {
		filter["username"] = username
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, &db.StoreError{Op: "find songs", Err: err}
	}

	songs := make([]*model.Song, 0)
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, &db.StoreError{Op: "decode songs", Err: err}
	}
	return songs, nil
}

// SearchSongs returns the user's songs whose title or artist contains the
// term as a case-insensitive substring.
func (r *mongoSongRepository) SearchSongs(ctx context.Context, username, term string) ([]*model.Song, error) {
	if term == "" {
		return nil, model.NewValidationError("search term cannot be empty")
	}

	coll, err := r.store.Songs()
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, searchFilter(username, term))
	if err != nil {
		return nil, &db.StoreError{Op: "search songs", Err: err}
	}

	songs := make([]*model.Song, 0)
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, &db.StoreError{Op: "decode songs", Err: err}
	}
	return songs, nil
}

// searchFilter builds the owner-scoped title/artist substring query. The
// term is quoted so regex metacharacters match literally.
func searchFilter(username, term string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	return bson.M{
		"username": username,
		"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"artist": pattern},
		},
	}
}

// GetSongByID returns the song only if it exists and belongs to the user;
// otherwise (nil, nil).
func (r *mongoSongRepository) GetSongByID(ctx context.Context, username, songID string) (*model.Song, error) {
	coll, err := r.store.Songs()
	if err != nil {
		return nil, err
	}

	objectID, err := parseSongID(songID)
	if err != nil {
		return nil, err
	}

	song := &model.Song{}
	err = coll.FindOne(ctx, ownerFilter(objectID, username)).Decode(song)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // Song not found (or owned by someone else)
		}
		return nil, &db.StoreError{Op: "find song", Err: err}
	}
	return song, nil
}

// UpdateSong loads the user's song, applies the partial update and persists
// the full document. It returns true only when the store reports an actual
// modification, so an update with identical values legitimately returns
// false.
func (r *mongoSongRepository) UpdateSong(ctx context.Context, username, songID string, update model.SongUpdate) (bool, error) {
	coll, err := r.store.Songs()
	if err != nil {
		return false, err
	}

	song, err := r.GetSongByID(ctx, username, songID)
	if err != nil {
		return false, err
	}
	if song == nil {
		return false, nil
	}

	before := song.Document()
	if err := song.ApplyUpdate(update); err != nil {
		return false, err
	}

	// A no-op update (all supplied values identical to the current ones)
	// must not count as a modification, and must not bump updated_at in
	// the store.
	if sameFields(before, song.Document()) {
		return false, nil
	}

	objectID, err := parseSongID(songID)
	if err != nil {
		return false, err
	}

	res, err := coll.UpdateOne(ctx, ownerFilter(objectID, username), bson.M{"$set": song.Document()})
	if err != nil {
		return false, db.ClassifyWriteErr("update song", err)
	}
	return res.ModifiedCount > 0, nil
}

// DeleteSong removes the user's song with a single delete keyed by both ID
// and username, and returns the pre-delete snapshot for audit purposes.
func (r *mongoSongRepository) DeleteSong(ctx context.Context, username, songID string) (*model.Song, error) {
	coll, err := r.store.Songs()
	if err != nil {
		return nil, err
	}

	song, err := r.GetSongByID(ctx, username, songID)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, nil
	}

	res, err := coll.DeleteOne(ctx, ownerFilter(song.ID, username))
	if err != nil {
		return nil, &db.StoreError{Op: "delete song", Err: err}
	}
	if res.DeletedCount == 0 {
		return nil, nil // Raced with another deletion
	}
	logger.Debug("song deleted",
		logger.String("song_id", song.ID.Hex()),
		logger.String("title", song.Title))
	return song, nil
}

// sameFields compares two song documents ignoring the updated_at timestamp,
// which ApplyUpdate refreshes unconditionally. Both maps are throwaway.
func sameFields(before, after bson.M) bool {
	delete(before, "updated_at")
	delete(after, "updated_at")
	return reflect.DeepEqual(before, after)
}

// ownerFilter keys a single-document operation by both ID and owner, which
// is what makes cross-user access impossible.
func ownerFilter(id primitive.ObjectID, username string) bson.M {
	return bson.M{"_id": id, "username": username}
}

// parseSongID validates the identifier format.
func parseSongID(songID string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(songID)
	if err != nil {
		return primitive.NilObjectID, model.NewValidationError("invalid song ID format: " + songID)
	}
	return objectID, nil
}
