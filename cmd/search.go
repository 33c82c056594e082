package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"songscli/db"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search songs by title or artist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := args[0]
		return withStore(func(ctx context.Context, store *db.Store) error {
			svc := newSongService(store)
			songs, err := svc.SearchSongs(ctx, username, term)
			if err != nil {
				return err
			}
			if len(songs) == 0 {
				fmt.Printf("No songs found matching '%s'\n", term)
				return nil
			}
			fmt.Printf("Search results for '%s':\n", term)
			for _, song := range songs {
				fmt.Print(formatSong(song))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
