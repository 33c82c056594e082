package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"songscli/db"
)

var (
	addTitle    string
	addArtist   string
	addGenre    string
	addYear     int
	addDuration int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new song",
	RunE: func(cmd *cobra.Command, args []string) error {
		var genre *string
		if cmd.Flags().Changed("genre") {
			genre = &addGenre
		}
		var year *int
		if cmd.Flags().Changed("year") {
			year = &addYear
		}
		var duration *int
		if cmd.Flags().Changed("duration") {
			duration = &addDuration
		}

		return withStore(func(ctx context.Context, store *db.Store) error {
			svc := newSongService(store)
			id, err := svc.AddSong(ctx, username, addTitle, addArtist, genre, year, duration)
			if err != nil {
				return err
			}
			fmt.Printf("Song '%s' by %s added successfully (ID: %s)\n", addTitle, addArtist, id.Hex())
			return nil
		})
	},
}

func init() {
	addCmd.Flags().StringVar(&addTitle, "title", "", "Song title")
	addCmd.Flags().StringVar(&addArtist, "artist", "", "Artist name")
	addCmd.Flags().StringVar(&addGenre, "genre", "", "Song genre")
	addCmd.Flags().IntVar(&addYear, "year", 0, "Release year")
	addCmd.Flags().IntVar(&addDuration, "duration", 0, "Duration in seconds")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("artist")
	rootCmd.AddCommand(addCmd)
}
