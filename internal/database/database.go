package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"luxestate/internal/config"
)

type DB struct {
	*sqlx.DB
}

func DSN(cfg config.DB) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DbHOST,
		cfg.DbPORT,
		cfg.DbUSER,
		cfg.DbPASSWORD,
		cfg.DbNAME,
		cfg.DbSSLMODE,
	)
}

// ConnectDB opens the pool, applies the migration file and pings the server.
func ConnectDB(ctx context.Context, cfg config.DB) (*DB, error) {
	slog.Info("connecting to database", "host", cfg.DbHOST, "dbname", cfg.DbNAME)

	db, err := sqlx.ConnectContext(ctx, "postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	dbStruct := &DB{db}

	if cfg.MigrationsPath != "" {
		if err := dbStruct.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := dbStruct.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check: %w", err)
	}

	slog.Info("connected to PostgreSQL")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations executes the statements in migrationFilePath. The file is
// written to be idempotent.
func (db *DB) RunMigrations(ctx context.Context, migrationFilePath string) error {
	migrationSQL, err := os.ReadFile(migrationFilePath)
	if err != nil {
		return fmt.Errorf("read migrations %s: %w", migrationFilePath, err)
	}

	slog.Info("applying migrations", "file", migrationFilePath)

	if _, err := db.ExecContext(ctx, string(migrationSQL)); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return errors.New("database is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// psql -h localhost -U postgres
// \c luxestate
// SELECT id, email, role FROM users;
