package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"songscli/db"
	"songscli/repository"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show user activity history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyLimit > cfg.MaxHistoryEntries {
			historyLimit = cfg.MaxHistoryEntries
		}
		return withStore(func(ctx context.Context, store *db.Store) error {
			svc := newSongService(store)
			entries, err := svc.GetHistory(ctx, username, historyLimit)
			if err != nil {
				return err
			}
			fmt.Println(formatHistory(entries, username))
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", repository.DefaultHistoryLimit, "Limit number of results")
	rootCmd.AddCommand(historyCmd)
}
