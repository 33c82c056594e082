package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSongUpdateIsEmpty(t *testing.T) {
	assert.True(t, SongUpdate{}.IsEmpty())
	assert.False(t, SongUpdate{Title: strPtr("x")}.IsEmpty())
	assert.False(t, SongUpdate{Duration: intPtr(0)}.IsEmpty())
}

func TestApplyUpdateChangesFieldsAndBumpsUpdatedAt(t *testing.T) {
	song, err := NewSong("alice", "Song 1", "Artist", nil, nil, nil)
	require.NoError(t, err)
	before := song.UpdatedAt

	err = song.ApplyUpdate(SongUpdate{
		Title: strPtr("Song 1 (Remix)"),
		Year:  intPtr(2010),
	})
	require.NoError(t, err)

	assert.Equal(t, "Song 1 (Remix)", song.Title)
	assert.Equal(t, "Artist", song.Artist)
	assert.Equal(t, 2010, *song.Year)
	assert.False(t, song.UpdatedAt.Before(before))
}

func TestApplyUpdateFailsAtomically(t *testing.T) {
	song, err := NewSong("alice", "Song 1", "Artist", nil, intPtr(2000), nil)
	require.NoError(t, err)
	snapshot := *song

	err = song.ApplyUpdate(SongUpdate{
		Title: strPtr("New Title"),
		Year:  intPtr(5000), // out of range, whole update must be discarded
	})
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, snapshot, *song, "no partial mutation may survive a failed update")
}

func TestApplyUpdateRejectsEmptyTitle(t *testing.T) {
	song, err := NewSong("alice", "Song 1", "Artist", nil, nil, nil)
	require.NoError(t, err)

	err = song.ApplyUpdate(SongUpdate{Title: strPtr("   ")})
	require.Error(t, err)
	assert.Equal(t, "Song 1", song.Title)
}
