package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"songscli/logger"
)

// Known action types. Other values are accepted but logged as unusual so
// new action kinds can be introduced without a lockstep deploy.
const (
	ActionAdded   = "added"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
	ActionPlayed  = "played"
	ActionViewed  = "viewed"
)

var knownActions = map[string]struct{}{
	ActionAdded:   {},
	ActionUpdated: {},
	ActionDeleted: {},
	ActionPlayed:  {},
	ActionViewed:  {},
}

// HistoryEntry is an append-only record of one action taken against a track
// on behalf of a user. SongTitle and SongArtist are a denormalized snapshot,
// not a reference: the entry outlives the track it describes.
type HistoryEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username   string             `bson:"username" json:"username"`
	Action     string             `bson:"action" json:"action"`
	SongTitle  string             `bson:"song_title" json:"songTitle"`
	SongArtist string             `bson:"song_artist" json:"songArtist"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}

// NewHistoryEntry builds a validated HistoryEntry stamped with the current
// UTC time.
func NewHistoryEntry(username, action, songTitle, songArtist string) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		Username:   strings.TrimSpace(username),
		Action:     strings.TrimSpace(action),
		SongTitle:  strings.TrimSpace(songTitle),
		SongArtist: strings.TrimSpace(songArtist),
		Timestamp:  time.Now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Validate checks the HistoryEntry invariants. Unknown actions are never
// rejected, only flagged.
func (e *HistoryEntry) Validate() error {
	if strings.TrimSpace(e.Username) == "" {
		return NewValidationError("username cannot be empty")
	}
	if strings.TrimSpace(e.Action) == "" {
		return NewValidationError("action cannot be empty")
	}
	if _, ok := knownActions[e.Action]; !ok {
		logger.Warn("unusual action type", logger.String("action", e.Action))
	}
	return nil
}

// Document converts the entry to its store document form. The ID is never
// included; the store assigns it on insert.
func (e *HistoryEntry) Document() bson.M {
	return bson.M{
		"username":    strings.TrimSpace(e.Username),
		"action":      strings.TrimSpace(e.Action),
		"song_title":  strings.TrimSpace(e.SongTitle),
		"song_artist": strings.TrimSpace(e.SongArtist),
		"timestamp":   e.Timestamp,
	}
}
