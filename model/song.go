package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Song represents one music track in a user's catalog. Title, Artist and
// Username are required and kept trimmed; the remaining attributes are
// optional. ID stays zero until the store assigns one.
type Song struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Artist    string             `bson:"artist" json:"artist"`
	Username  string             `bson:"username" json:"username"`
	Genre     *string            `bson:"genre,omitempty" json:"genre,omitempty"`
	Year      *int               `bson:"year,omitempty" json:"year,omitempty"`
	Duration  *int               `bson:"duration,omitempty" json:"duration,omitempty"` // seconds
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// NewSong builds a validated Song. Both timestamps are set to the current
// UTC time.
func NewSong(username, title, artist string, genre *string, year, duration *int) (*Song, error) {
	now := time.Now().UTC()
	song := &Song{
		Title:     strings.TrimSpace(title),
		Artist:    strings.TrimSpace(artist),
		Username:  strings.TrimSpace(username),
		Genre:     trimOptional(genre),
		Year:      year,
		Duration:  duration,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := song.Validate(); err != nil {
		return nil, err
	}
	return song, nil
}

// Validate checks all Song invariants.
func (s *Song) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return NewValidationError("song title cannot be empty")
	}
	if strings.TrimSpace(s.Artist) == "" {
		return NewValidationError("artist name cannot be empty")
	}
	if strings.TrimSpace(s.Username) == "" {
		return NewValidationError("username cannot be empty")
	}
	if s.Year != nil && (*s.Year < 1000 || *s.Year > 3000) {
		return NewValidationError("year must be between 1000 and 3000")
	}
	if s.Duration != nil && *s.Duration < 0 {
		return NewValidationError("duration cannot be negative")
	}
	if s.UpdatedAt.Before(s.CreatedAt) {
		return NewValidationError("updated_at cannot precede created_at")
	}
	return nil
}

// Document converts the song to its store document form. Absent optional
// fields are omitted entirely rather than written as null, and the ID is
// never included (the store owns _id assignment; updates must not touch it).
func (s *Song) Document() bson.M {
	doc := bson.M{
		"title":      strings.TrimSpace(s.Title),
		"artist":     strings.TrimSpace(s.Artist),
		"username":   strings.TrimSpace(s.Username),
		"created_at": s.CreatedAt,
		"updated_at": s.UpdatedAt,
	}
	if s.Genre != nil && *s.Genre != "" {
		doc["genre"] = strings.TrimSpace(*s.Genre)
	}
	if s.Year != nil {
		doc["year"] = *s.Year
	}
	if s.Duration != nil {
		doc["duration"] = *s.Duration
	}
	return doc
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
