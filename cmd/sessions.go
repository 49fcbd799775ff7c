package cmd

import (
	"fmt"
	"time"

	"movie-review/internal/data/repository"
	"movie-review/pkg/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var pruneRetention time.Duration

// sessionsCmd groups session maintenance
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Session maintenance",
}

// sessionsPruneCmd deletes long-expired sessions
var sessionsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete sessions that expired before the retention window",
	RunE:  runSessionsPrune,
}

func init() {
	sessionsPruneCmd.Flags().DurationVar(&pruneRetention, "retention", 7*24*time.Hour, "Keep expired sessions this long")
	sessionsCmd.AddCommand(sessionsPruneCmd)
}

func runSessionsPrune(cmd *cobra.Command, args []string) error {
	db, err := database.InitDB(cmd.Context(), config.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repository.NewSessionRepository(db, logger)
	deleted, err := repo.PruneExpired(cmd.Context(), pruneRetention)
	if err != nil {
		return err
	}

	logger.Info("Expired sessions pruned",
		zap.Int64("deleted", deleted),
		zap.Duration("retention", pruneRetention))
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired sessions\n", deleted)
	return nil
}
