package service

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"songscli/logger"
	"songscli/model"
	"songscli/repository"
)

// SongService composes the song repository and the audit trail for each
// use case. Primary failures propagate unchanged; a failed audit append
// after a successful mutation is logged and swallowed, never surfaced.
type SongService struct {
	songs   repository.SongRepository
	history repository.HistoryRepository
}

// NewSongService creates a SongService over the given repositories.
func NewSongService(songs repository.SongRepository, history repository.HistoryRepository) *SongService {
	return &SongService{songs: songs, history: history}
}

// AddSong validates and persists a new song, then records an "added" entry.
func (s *SongService) AddSong(ctx context.Context, username, title, artist string, genre *string, year, duration *int) (primitive.ObjectID, error) {
	song, err := model.NewSong(username, title, artist, genre, year, duration)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, err := s.songs.CreateSong(ctx, song)
	if err != nil {
		return primitive.NilObjectID, err
	}

	s.logHistory(ctx, username, model.ActionAdded, song.Title, song.Artist)
	logger.Info("song added",
		logger.String("song_id", id.Hex()),
		logger.String("title", song.Title),
		logger.String("username", song.Username))
	return id, nil
}

// ListSongs lists songs newest-first. An empty username means all users and
// is only passed by the explicit all-users listing. A limit of zero means
// no limit; a negative limit is a usage error.
func (s *SongService) ListSongs(ctx context.Context, username string, limit int) ([]*model.Song, error) {
	if limit < 0 {
		return nil, model.NewValidationError("limit must be a positive integer")
	}
	return s.songs.GetSongs(ctx, strings.TrimSpace(username), int64(limit))
}

// SearchSongs finds the user's songs matching the term by title or artist.
func (s *SongService) SearchSongs(ctx context.Context, username, term string) ([]*model.Song, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, model.NewValidationError("search term cannot be empty")
	}
	return s.songs.SearchSongs(ctx, username, term)
}

// GetSong returns the user's song by ID, recording a "viewed" entry when it
// is found. Not-found is (nil, nil), not an error.
func (s *SongService) GetSong(ctx context.Context, username, songID string) (*model.Song, error) {
	song, err := s.songs.GetSongByID(ctx, username, songID)
	if err != nil {
		return nil, err
	}
	if song != nil {
		s.logHistory(ctx, username, model.ActionViewed, song.Title, song.Artist)
	}
	return song, nil
}

// UpdateSong applies a partial update to the user's song. The audit entry
// snapshots the pre-update title and artist. Returns false when the song
// does not exist or nothing actually changed.
func (s *SongService) UpdateSong(ctx context.Context, username, songID string, update model.SongUpdate) (bool, error) {
	if update.IsEmpty() {
		return false, model.NewValidationError("no update fields provided")
	}

	original, err := s.songs.GetSongByID(ctx, username, songID)
	if err != nil {
		return false, err
	}
	if original == nil {
		return false, nil
	}

	modified, err := s.songs.UpdateSong(ctx, username, songID, update)
	if err != nil {
		return false, err
	}

	if modified {
		s.logHistory(ctx, username, model.ActionUpdated, original.Title, original.Artist)
		logger.Info("song updated",
			logger.String("song_id", songID),
			logger.String("username", username))
	}
	return modified, nil
}

// DeleteSong removes the user's song and returns the pre-delete snapshot,
// or nil when it did not exist.
func (s *SongService) DeleteSong(ctx context.Context, username, songID string) (*model.Song, error) {
	deleted, err := s.songs.DeleteSong(ctx, username, songID)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, nil
	}

	s.logHistory(ctx, username, model.ActionDeleted, deleted.Title, deleted.Artist)
	logger.Info("song deleted",
		logger.String("song_id", songID),
		logger.String("username", username))
	return deleted, nil
}

// GetHistory returns the user's most recent audit entries, newest first.
func (s *SongService) GetHistory(ctx context.Context, username string, limit int) ([]*model.HistoryEntry, error) {
	if limit < 0 {
		return nil, model.NewValidationError("limit must be a positive integer")
	}
	return s.history.GetHistory(ctx, username, int64(limit))
}

// logHistory appends an audit entry on a best-effort basis. The trail is a
// secondary observability concern: a failure here must not change the
// outcome of the primary operation.
func (s *SongService) logHistory(ctx context.Context, username, action, title, artist string) {
	entry, err := model.NewHistoryEntry(username, action, title, artist)
	if err != nil {
		logger.Warn("failed to build history entry",
			logger.String("action", action),
			logger.ErrorField(err))
		return
	}

	if _, err := s.history.CreateEntry(ctx, entry); err != nil {
		logger.Warn("failed to log history",
			logger.String("action", action),
			logger.ErrorField(err))
	}
}
