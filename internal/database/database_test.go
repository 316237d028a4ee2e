package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxestate/internal/config"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(true),
	)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &DB{sqlx.NewDb(db, "postgres")}, mock
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.DB{
		DbHOST:     "db",
		DbPORT:     "5432",
		DbUSER:     "lux",
		DbPASSWORD: "secret",
		DbNAME:     "luxestate",
		DbSSLMODE:  "disable",
	})

	assert.Equal(t, "host=db port=5432 user=lux password=secret dbname=luxestate sslmode=disable", dsn)
}

func TestRunMigrations(t *testing.T) {
	t.Run("executes file contents", func(t *testing.T) {
		db, mock := newMockDB(t)

		file := filepath.Join(t.TempDir(), "001.sql")
		require.NoError(t, os.WriteFile(file, []byte("CREATE TABLE IF NOT EXISTS users (id TEXT);"), 0o600))

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS users (id TEXT);").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := db.RunMigrations(context.Background(), file)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing file", func(t *testing.T) {
		db, _ := newMockDB(t)

		err := db.RunMigrations(context.Background(), filepath.Join(t.TempDir(), "nope.sql"))

		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("exec error", func(t *testing.T) {
		db, mock := newMockDB(t)

		file := filepath.Join(t.TempDir(), "001.sql")
		require.NoError(t, os.WriteFile(file, []byte("BROKEN"), 0o600))

		mock.ExpectExec("BROKEN").WillReturnError(errors.New("syntax error"))

		err := db.RunMigrations(context.Background(), file)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "apply migrations")
	})
}

func TestHealthCheck(t *testing.T) {
	t.Run("ping ok", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing()

		assert.NoError(t, db.HealthCheck(context.Background()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ping fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("down"))

		assert.Error(t, db.HealthCheck(context.Background()))
	})

	t.Run("nil db", func(t *testing.T) {
		var db *DB
		assert.Error(t, db.HealthCheck(context.Background()))
	})
}
