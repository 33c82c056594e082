package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"songscli/db"
)

var playCmd = &cobra.Command{
	Use:   "play <song_id>",
	Short: "Play a song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *db.Store) error {
			svc := newPlaybackService(store)
			song, err := svc.PlaySong(ctx, username, args[0])
			if err != nil {
				return err
			}
			if song == nil {
				return errSongNotFound
			}
			fmt.Printf("Playing '%s' by %s\n", song.Title, song.Artist)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
