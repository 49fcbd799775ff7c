package cmd

import (
	"context"
	"time"

	"movie-review/internal/data/repository"
	"movie-review/internal/wire"
	"movie-review/pkg/cache"
	"movie-review/pkg/database"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Sentry error tracking
	if config.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              config.Sentry.DSN,
			Environment:      config.Sentry.Environment,
			AttachStacktrace: true,
		}); err != nil {
			logger.Error("Sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	db, err := database.InitDB(cmd.Context(), config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if migrateOnStart {
		if err := database.Migrate(cmd.Context(), db, logger); err != nil {
			logger.Error("Migration failed", zap.Error(err))
			return err
		}
	}

	// Read-view cache; the service runs without it when REDIS_ADDR is empty.
	readCache := cache.New(config.Redis.Addr, config.Redis.Password, config.Redis.DB, logger)
	defer readCache.Close()

	pingCtx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	if err := readCache.Ping(pingCtx); err != nil {
		logger.Warn("Redis unreachable, serving without cache", zap.Error(err))
	}
	cancel()

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, readCache, config, logger)

	return APIServer(cmd.Context(), app.Router, config.App.Port, logger)
}
