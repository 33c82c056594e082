package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"songscli/model"
)

func TestParseSongID(t *testing.T) {
	want := primitive.NewObjectID()

	got, err := parseSongID(want.Hex())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseSongIDInvalid(t *testing.T) {
	for _, id := range []string{"", "not-an-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := parseSongID(id)
		require.Error(t, err, "id %q", id)

		var verr *model.ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}

func TestOwnerFilterKeysByIDAndUser(t *testing.T) {
	id := primitive.NewObjectID()
	filter := ownerFilter(id, "alice")

	assert.Equal(t, bson.M{"_id": id, "username": "alice"}, filter)
}

func TestSameFieldsIgnoresUpdatedAt(t *testing.T) {
	song, err := model.NewSong("alice", "Song 1", "Artist", nil, nil, nil)
	require.NoError(t, err)

	before := song.Document()
	require.NoError(t, song.ApplyUpdate(model.SongUpdate{Title: &song.Title}))
	assert.True(t, sameFields(before, song.Document()))

	title := "Song 1 (Remix)"
	before = song.Document()
	require.NoError(t, song.ApplyUpdate(model.SongUpdate{Title: &title}))
	assert.False(t, sameFields(before, song.Document()))
}

func TestSearchFilterQuotesMetacharacters(t *testing.T) {
	filter := searchFilter("alice", "a.c")

	assert.Equal(t, "alice", filter["username"])
	clauses, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, clauses, 2)

	title := clauses[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `a\.c`, title.Pattern)
	assert.Equal(t, "i", title.Options)

	artist := clauses[1].(bson.M)["artist"].(primitive.Regex)
	assert.Equal(t, `a\.c`, artist.Pattern)
}
