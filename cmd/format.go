package cmd

import (
	"fmt"
	"strings"

	"songscli/model"
)

// formatDuration renders seconds as m:ss, or N/A when absent.
func formatDuration(duration *int) string {
	if duration == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d:%02d", *duration/60, *duration%60)
}

func orNA(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}

func yearOrNA(year *int) string {
	if year == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d", *year)
}

// formatSong renders a single song as a short block.
func formatSong(song *model.Song) string {
	id := "N/A"
	if !song.ID.IsZero() {
		id = song.ID.Hex()
	}
	return fmt.Sprintf("%s - %s\n   Genre: %s | Year: %s | Duration: %s\n   ID: %s\n",
		song.Title, song.Artist,
		orNA(song.Genre), yearOrNA(song.Year), formatDuration(song.Duration),
		id)
}

// formatSongList renders songs as blocks, with a header naming the user
// when the listing is user-scoped.
func formatSongList(songs []*model.Song, username string) string {
	if len(songs) == 0 {
		if username != "" {
			return fmt.Sprintf("No songs found for %s", username)
		}
		return "No songs found"
	}

	var b strings.Builder
	if username != "" {
		fmt.Fprintf(&b, "Songs for %s:\n", username)
	} else {
		b.WriteString("Songs:\n")
	}
	for _, song := range songs {
		b.WriteString(formatSong(song))
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatSongTable renders songs as a fixed-width table for large listings.
func formatSongTable(songs []*model.Song) string {
	if len(songs) == 0 {
		return "No songs found"
	}

	header := fmt.Sprintf("%-30s %-25s %-15s %-6s %-8s", "Title", "Artist", "Genre", "Year", "Duration")
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", len(header)))
	for _, song := range songs {
		fmt.Fprintf(&b, "\n%-30s %-25s %-15s %-6s %-8s",
			truncate(song.Title, 30),
			truncate(song.Artist, 25),
			truncate(orNA(song.Genre), 15),
			yearOrNA(song.Year),
			formatDuration(song.Duration))
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// formatHistory renders the user's audit trail, newest first.
func formatHistory(entries []*model.HistoryEntry, username string) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No history found for %s", username)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "History for %s:", username)
	for _, entry := range entries {
		fmt.Fprintf(&b, "\n%s - %s '%s' by %s",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.Action, entry.SongTitle, entry.SongArtist)
	}
	return b.String()
}
