package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tenantive/accounts-api/internal/api"
	"github.com/tenantive/accounts-api/internal/infrastructure/config"
	mongodb "github.com/tenantive/accounts-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tenantive/accounts-api/internal/infrastructure/db/redis"
	"github.com/tenantive/accounts-api/internal/infrastructure/seed"
	"github.com/tenantive/accounts-api/pkg/logger"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server. Usage:

	accounts-api server
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.Development(),
			Service: cfg.AppName,
		})

		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET must be set")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  10 * time.Second,
		})
		if err != nil {
			return fmt.Errorf("mongo connect: %w", err)
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			return fmt.Errorf("mongo indexes: %w", err)
		}

		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  5 * time.Second,
		})
		if err != nil {
			// Redis only backs the login throttle; the API works without it.
			log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
			rdb = nil
		}

		if cfg.Seed {
			if _, err := seed.Run(ctx, db, log); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}

		e := api.NewRouter(cfg, db, rdb)

		// Serve until interrupted, then drain in-flight requests.
		errCh := make(chan error, 1)
		go func() {
			errCh <- e.Start(":" + cfg.Port)
		}()
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server: %w", err)
			}
		case sig := <-quit:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer shutdownCancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
