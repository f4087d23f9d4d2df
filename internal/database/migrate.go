package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// Migrate applies every pending migration.
func (db *DB) Migrate(ctx context.Context) error {
	return db.withGoose(func(conn *sql.DB) error {
		if err := goose.UpContext(ctx, conn, migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}

		version, err := goose.GetDBVersionContext(ctx, conn)
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}

		slog.Info("database schema ensured", "version", version)
		return nil
	})
}

// Rollback reverts the most recent migration.
func (db *DB) Rollback(ctx context.Context) error {
	return db.withGoose(func(conn *sql.DB) error {
		if err := goose.DownContext(ctx, conn, migrationsDir); err != nil {
			return fmt.Errorf("rollback migration: %w", err)
		}
		return nil
	})
}

// Status logs the state of every known migration.
func (db *DB) Status(ctx context.Context) error {
	return db.withGoose(func(conn *sql.DB) error {
		return goose.StatusContext(ctx, conn, migrationsDir)
	})
}

func (db *DB) withGoose(fn func(conn *sql.DB) error) error {
	if db == nil || db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	conn := stdlib.OpenDBFromPool(db.Pool)
	defer conn.Close()

	return fn(conn)
}
