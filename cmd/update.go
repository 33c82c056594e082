package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"songscli/db"
	"songscli/model"
)

var (
	updateTitle    string
	updateArtist   string
	updateGenre    string
	updateYear     int
	updateDuration int
)

var updateCmd = &cobra.Command{
	Use:   "update <song_id>",
	Short: "Update a song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := model.SongUpdate{}
		if cmd.Flags().Changed("title") {
			update.Title = &updateTitle
		}
		if cmd.Flags().Changed("artist") {
			update.Artist = &updateArtist
		}
		if cmd.Flags().Changed("genre") {
			update.Genre = &updateGenre
		}
		if cmd.Flags().Changed("year") {
			update.Year = &updateYear
		}
		if cmd.Flags().Changed("duration") {
			update.Duration = &updateDuration
		}

		return withStore(func(ctx context.Context, store *db.Store) error {
			svc := newSongService(store)
			modified, err := svc.UpdateSong(ctx, username, args[0], update)
			if err != nil {
				return err
			}
			if !modified {
				return errors.New("song not found or no changes made")
			}
			fmt.Println("Song updated successfully")
			return nil
		})
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVar(&updateArtist, "artist", "", "New artist")
	updateCmd.Flags().StringVar(&updateGenre, "genre", "", "New genre")
	updateCmd.Flags().IntVar(&updateYear, "year", 0, "New year")
	updateCmd.Flags().IntVar(&updateDuration, "duration", 0, "New duration in seconds")
	rootCmd.AddCommand(updateCmd)
}
