package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"luxestate/internal/config"
	"luxestate/internal/database"
	"luxestate/internal/repository"
)

var (
	cfg  *config.Config
	db   *database.DB
	repo *repository.Repository
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the Luxestate database",
	Long: `Bootstrap accounts and sample listings in the Luxestate database.

Connection settings are read from .env and the environment (DB_HOST,
DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE, MIGRATIONS_PATH).

Examples:
  seed admin --password 's3cret!'
  seed sellers --count 5
  seed properties --count 50
  seed verify`,
	SilenceUsage:      true,
	PersistentPreRunE: connect,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			if err := db.CloseDB(); err != nil {
				slog.Warn("failed to close database", "error", err)
			}
		}
	},
}

func connect(cmd *cobra.Command, args []string) error {
	cfg = config.LoadConfig()

	conn, err := database.ConnectDB(cmd.Context(), cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	db = conn
	repo = repository.NewRepository(conn.DB)
	return nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}
