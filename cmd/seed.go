package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tenantive/accounts-api/internal/infrastructure/config"
	mongodb "github.com/tenantive/accounts-api/internal/infrastructure/db/mongo"
	"github.com/tenantive/accounts-api/internal/infrastructure/seed"
	"github.com/tenantive/accounts-api/pkg/logger"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed default users into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.Development(),
			Service: cfg.AppName,
		})

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
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

		inserted, err := seed.Run(ctx, db, log)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		log.Info().Int("inserted", inserted).Msg("seed finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
