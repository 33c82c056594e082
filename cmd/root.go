package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"songscli/config"
	"songscli/db"
	"songscli/logger"
	"songscli/repository"
	"songscli/service"
)

var (
	cfg      *config.Config
	username string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:           "songscli",
	Short:         "Songs CLI - manage your music collection",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger.Init(logger.Config{
			Level:      level,
			OutputPath: cfg.LogPath,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		})

		// Correlates this CLI invocation with store-side log lines.
		logger.Debug("invocation started",
			logger.String("invocation_id", uuid.NewString()),
			logger.String("command", cmd.Name()),
			logger.String("username", username))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&username, "user", "", "Username")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	_ = rootCmd.MarkPersistentFlagRequired("user")
}

// Execute executes the root command.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		logger.Sync()
		os.Exit(1)
	}
}

// withStore runs fn against a connected store that is released when the
// command finishes, on every exit path.
func withStore(fn func(ctx context.Context, store *db.Store) error) error {
	ctx := context.Background()
	return db.WithStore(ctx, cfg, func(store *db.Store) error {
		return fn(ctx, store)
	})
}

func newSongService(store *db.Store) *service.SongService {
	return service.NewSongService(
		repository.NewMongoSongRepository(store),
		repository.NewMongoHistoryRepository(store),
	)
}

func newPlaybackService(store *db.Store) *service.PlaybackService {
	return service.NewPlaybackService(
		repository.NewMongoSongRepository(store),
		repository.NewMongoHistoryRepository(store),
	)
}
