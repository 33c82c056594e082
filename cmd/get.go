package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"songscli/db"
)

var errSongNotFound = errors.New("song not found")

var getCmd = &cobra.Command{
	Use:   "get <song_id>",
	Short: "Get a specific song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *db.Store) error {
			svc := newSongService(store)
			song, err := svc.GetSong(ctx, username, args[0])
			if err != nil {
				return err
			}
			if song == nil {
				return errSongNotFound
			}
			fmt.Println("Song details:")
			fmt.Print(formatSong(song))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
