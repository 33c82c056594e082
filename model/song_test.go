package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestNewSongValid(t *testing.T) {
	song, err := NewSong("alice", "  Song 1  ", "Artist", strPtr("rock"), intPtr(1999), intPtr(245))
	require.NoError(t, err)

	assert.Equal(t, "Song 1", song.Title)
	assert.Equal(t, "Artist", song.Artist)
	assert.Equal(t, "alice", song.Username)
	assert.Equal(t, "rock", *song.Genre)
	assert.Equal(t, 1999, *song.Year)
	assert.Equal(t, 245, *song.Duration)
	assert.True(t, song.ID.IsZero())
	assert.Equal(t, time.UTC, song.CreatedAt.Location())
	assert.False(t, song.UpdatedAt.Before(song.CreatedAt))
}

func TestNewSongInvalid(t *testing.T) {
	tests := []struct {
		name     string
		username string
		title    string
		artist   string
		year     *int
		duration *int
	}{
		{name: "empty title", username: "alice", title: "", artist: "Artist"},
		{name: "whitespace title", username: "alice", title: "   ", artist: "Artist"},
		{name: "empty artist", username: "alice", title: "Song", artist: " "},
		{name: "empty username", username: "", title: "Song", artist: "Artist"},
		{name: "year too small", username: "alice", title: "Song", artist: "Artist", year: intPtr(999)},
		{name: "year too large", username: "alice", title: "Song", artist: "Artist", year: intPtr(3001)},
		{name: "negative duration", username: "alice", title: "Song", artist: "Artist", duration: intPtr(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSong(tt.username, tt.title, tt.artist, nil, tt.year, tt.duration)
			require.Error(t, err)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestSongYearBoundaries(t *testing.T) {
	for _, year := range []int{1000, 3000} {
		_, err := NewSong("alice", "Song", "Artist", nil, intPtr(year), nil)
		assert.NoError(t, err, "year %d should be accepted", year)
	}
}

func TestSongDocumentOmitsAbsentOptionals(t *testing.T) {
	song, err := NewSong("alice", "Song 1", "Artist", nil, nil, nil)
	require.NoError(t, err)

	doc := song.Document()
	assert.NotContains(t, doc, "genre")
	assert.NotContains(t, doc, "year")
	assert.NotContains(t, doc, "duration")
	assert.NotContains(t, doc, "_id")
	assert.Equal(t, "Song 1", doc["title"])
}

func TestSongDocumentRoundTrip(t *testing.T) {
	song, err := NewSong("alice", "Song 1", "Artist", strPtr("jazz"), intPtr(2005), intPtr(180))
	require.NoError(t, err)

	raw, err := bson.Marshal(song.Document())
	require.NoError(t, err)

	decoded := &Song{}
	require.NoError(t, bson.Unmarshal(raw, decoded))

	assert.Equal(t, song.Title, decoded.Title)
	assert.Equal(t, song.Artist, decoded.Artist)
	assert.Equal(t, song.Username, decoded.Username)
	assert.Equal(t, *song.Genre, *decoded.Genre)
	assert.Equal(t, *song.Year, *decoded.Year)
	assert.Equal(t, *song.Duration, *decoded.Duration)
	// BSON stores datetimes at millisecond precision.
	assert.True(t, song.CreatedAt.Truncate(time.Millisecond).Equal(decoded.CreatedAt))
	assert.True(t, song.UpdatedAt.Truncate(time.Millisecond).Equal(decoded.UpdatedAt))
	assert.True(t, decoded.ID.IsZero())
}
