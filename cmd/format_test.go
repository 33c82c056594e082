package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"songscli/model"
)

func intPtr(i int) *int { return &i }

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "N/A", formatDuration(nil))
	assert.Equal(t, "0:05", formatDuration(intPtr(5)))
	assert.Equal(t, "3:05", formatDuration(intPtr(185)))
	assert.Equal(t, "10:00", formatDuration(intPtr(600)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 30))
	assert.Equal(t, "aaaaaaa...", truncate("aaaaaaaaaaaa", 10))
}

func TestFormatSongList(t *testing.T) {
	assert.Equal(t, "No songs found for alice", formatSongList(nil, "alice"))
	assert.Equal(t, "No songs found", formatSongList(nil, ""))

	song, err := model.NewSong("alice", "Song 1", "Artist", nil, nil, nil)
	require.NoError(t, err)

	out := formatSongList([]*model.Song{song}, "alice")
	assert.Contains(t, out, "Songs for alice:")
	assert.Contains(t, out, "Song 1 - Artist")
	assert.Contains(t, out, "ID: N/A")
}

func TestFormatSongTable(t *testing.T) {
	song, err := model.NewSong("alice", "Song 1", "Artist", nil, intPtr(1999), intPtr(185))
	require.NoError(t, err)

	out := formatSongTable([]*model.Song{song})
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "1999")
	assert.Contains(t, out, "3:05")
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "No history found for alice", formatHistory(nil, "alice"))

	entry, err := model.NewHistoryEntry("alice", model.ActionPlayed, "Song 1", "Artist")
	require.NoError(t, err)

	out := formatHistory([]*model.HistoryEntry{entry}, "alice")
	assert.Contains(t, out, "History for alice:")
	assert.Contains(t, out, "played 'Song 1' by Artist")
}
