package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"songscli/db"
	"songscli/model"
)

var (
	listLimit int
	listAll   bool
	listTable bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List songs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("limit") && listLimit <= 0 {
			return model.NewValidationError("limit must be a positive integer")
		}

		// Listing across all users only happens on the explicit --all flag.
		// That listing is unbounded by nature, so cap it with the
		// configured default unless the user asked for a limit.
		owner := username
		if listAll {
			owner = ""
			if !cmd.Flags().Changed("limit") {
				listLimit = cfg.DefaultListLimit
			}
		}

		return withStore(func(ctx context.Context, store *db.Store) error {
			svc := newSongService(store)
			songs, err := svc.ListSongs(ctx, owner, listLimit)
			if err != nil {
				return err
			}
			if listTable && len(songs) > 0 {
				fmt.Println(formatSongTable(songs))
			} else {
				fmt.Println(formatSongList(songs, owner))
			}
			return nil
		})
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Limit number of results")
	listCmd.Flags().BoolVar(&listAll, "all", false, "List all users' songs")
	listCmd.Flags().BoolVar(&listTable, "table", false, "Display as table")
	rootCmd.AddCommand(listCmd)
}
