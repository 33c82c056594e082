package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"songscli/db"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <song_id>",
	Short: "Delete a song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(ctx context.Context, store *db.Store) error {
			svc := newSongService(store)

			if !deleteYes {
				song, err := svc.GetSong(ctx, username, args[0])
				if err != nil {
					return err
				}
				if song == nil {
					return errSongNotFound
				}
				fmt.Printf("Are you sure you want to delete '%s' by %s? (y/N): ", song.Title, song.Artist)
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Println("Delete cancelled")
					return nil
				}
			}

			deleted, err := svc.DeleteSong(ctx, username, args[0])
			if err != nil {
				return err
			}
			if deleted == nil {
				return errSongNotFound
			}
			fmt.Printf("Song '%s' by %s deleted successfully\n", deleted.Title, deleted.Artist)
			return nil
		})
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
