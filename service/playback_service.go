package service

import (
	"context"

	"songscli/logger"
	"songscli/model"
	"songscli/repository"
)

// PlaybackService handles the play use case. Playing is an audited action,
// not media I/O: the service resolves the song and records a "played" entry.
type PlaybackService struct {
	songs   repository.SongRepository
	history repository.HistoryRepository
}

// NewPlaybackService creates a PlaybackService over the given repositories.
func NewPlaybackService(songs repository.SongRepository, history repository.HistoryRepository) *PlaybackService {
	return &PlaybackService{songs: songs, history: history}
}

// PlaySong resolves the user's song and records the play. Not-found is
// (nil, nil), not an error.
func (p *PlaybackService) PlaySong(ctx context.Context, username, songID string) (*model.Song, error) {
	song, err := p.songs.GetSongByID(ctx, username, songID)
	if err != nil {
		return nil, err
	}
	if song == nil {
		return nil, nil
	}

	entry, err := model.NewHistoryEntry(username, model.ActionPlayed, song.Title, song.Artist)
	if err != nil {
		logger.Warn("failed to build history entry", logger.ErrorField(err))
		return song, nil
	}
	if _, err := p.history.CreateEntry(ctx, entry); err != nil {
		logger.Warn("failed to log history",
			logger.String("action", model.ActionPlayed),
			logger.ErrorField(err))
	}

	logger.Info("song played",
		logger.String("title", song.Title),
		logger.String("artist", song.Artist),
		logger.String("username", username))
	return song, nil
}
