// Package cmd provides the command-line interface for aeroquery. It wires
// configuration, logging, the database pool and the three LLM agents into
// the answer pipeline, using the Cobra CLI framework.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aeroquery/aeroquery/pkg/config"
	"github.com/aeroquery/aeroquery/pkg/database"
	"github.com/aeroquery/aeroquery/pkg/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "aeroquery",
	Short:         "Natural-language questions over the flight booking database",
	Long:          `Aeroquery turns a natural-language question about the flight booking database into an executed SQL query and a plain-language answer, using three LLM agents and one database round-trip.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the process logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(Version)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// connect opens the single long-lived connection pool.
func connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*database.DB, error) {
	connStr := cfg.Database.ConnectionString()
	logger.Info("connecting to database",
		zap.String("target", logging.SanitizeConnectionString(connStr)))

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            connStr,
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}
