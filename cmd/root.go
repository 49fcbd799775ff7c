package cmd

import (
	"context"
	"fmt"
	"log"

	"movie-review/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	config *utils.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "movie-review",
	Short: "Private movie review service",
	Long: `movie-review serves the movie catalog, review submission and
user pages of a private review site over a JSON API.

Commands:
  serve     - Run the HTTP API
  migrate   - Apply pending database migrations
  sessions  - Session maintenance`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		config, err = utils.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err = utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
		if err != nil {
			log.Printf("Failed to init logger: %v. Using production logger.", err)
			logger, _ = zap.NewProduction()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
