// Package postgres implements the content gateway on PostgreSQL through the
// pgx database/sql driver. The schema is embedded and applied with goose.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/davidbz/nepersonaj/internal/observability"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Config contains database connection settings.
type Config struct {
	URL             string        `env:"DATABASE_URL"`
	AutoMigrate     bool          `env:"DATABASE_AUTO_MIGRATE"      envDefault:"true"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS"    envDefault:"10"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS"    envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// Open connects to the database and verifies the connection.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.URL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate applies all pending embedded migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{logger: observability.FromContext(ctx).Sugar()})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

// gooseLogger routes goose output to zap.
type gooseLogger struct {
	logger *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Infof(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Errorf(format, v...)
}

// runInTx executes fn inside a transaction, rolling back on error or panic.
func runInTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			observability.FromContext(ctx).Error("failed to roll back transaction",
				observability.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// queryer is implemented by *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// textArray scans a PostgreSQL text[] column. pgtype.Map caches scan plans
// without locking, so each scan gets its own.
func textArray(dst *[]string) sql.Scanner {
	return pgtype.NewMap().SQLScanner(dst)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
