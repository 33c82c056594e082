package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNewHistoryEntry(t *testing.T) {
	entry, err := NewHistoryEntry("alice", ActionAdded, "Song 1", "Artist")
	require.NoError(t, err)

	assert.Equal(t, "alice", entry.Username)
	assert.Equal(t, "added", entry.Action)
	assert.Equal(t, time.UTC, entry.Timestamp.Location())
	assert.True(t, entry.ID.IsZero())
}

func TestNewHistoryEntryInvalid(t *testing.T) {
	_, err := NewHistoryEntry("", ActionAdded, "Song 1", "Artist")
	require.Error(t, err)

	_, err = NewHistoryEntry("alice", "  ", "Song 1", "Artist")
	require.Error(t, err)
}

func TestNewHistoryEntryAcceptsUnknownAction(t *testing.T) {
	// Unrecognized actions are flagged in logs but never rejected.
	entry, err := NewHistoryEntry("alice", "archived", "Song 1", "Artist")
	require.NoError(t, err)
	assert.Equal(t, "archived", entry.Action)
}

func TestHistoryEntryDocumentRoundTrip(t *testing.T) {
	entry, err := NewHistoryEntry("alice", ActionDeleted, "Song 1", "Artist")
	require.NoError(t, err)

	raw, err := bson.Marshal(entry.Document())
	require.NoError(t, err)

	decoded := &HistoryEntry{}
	require.NoError(t, bson.Unmarshal(raw, decoded))

	assert.Equal(t, entry.Username, decoded.Username)
	assert.Equal(t, entry.Action, decoded.Action)
	assert.Equal(t, entry.SongTitle, decoded.SongTitle)
	assert.Equal(t, entry.SongArtist, decoded.SongArtist)
	assert.True(t, entry.Timestamp.Truncate(time.Millisecond).Equal(decoded.Timestamp))
}
