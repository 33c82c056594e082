package model

import "time"

// SongUpdate describes a partial update to a Song. Nil fields are left
// untouched; set fields replace the current value.
type SongUpdate struct {
	Title    *string
	Artist   *string
	Genre    *string
	Year     *int
	Duration *int
}

// IsEmpty reports whether no field is set.
func (u SongUpdate) IsEmpty() bool {
	return u.Title == nil && u.Artist == nil && u.Genre == nil && u.Year == nil && u.Duration == nil
}

// ApplyUpdate merges the set fields into the song, re-validates the whole
// record and bumps UpdatedAt. On validation failure the song is left
// completely unchanged.
func (s *Song) ApplyUpdate(u SongUpdate) error {
	next := *s
	if u.Title != nil {
		next.Title = *u.Title
	}
	if u.Artist != nil {
		next.Artist = *u.Artist
	}
	if u.Genre != nil {
		next.Genre = trimOptional(u.Genre)
	}
	if u.Year != nil {
		next.Year = u.Year
	}
	if u.Duration != nil {
		next.Duration = u.Duration
	}
	next.UpdatedAt = time.Now().UTC()

	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}
