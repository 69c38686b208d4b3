package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/vfg2006/web-traffic-api/internal/config"
)

type Conn interface {
	Queryer
	Begin(context.Context) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	// Os grupos de extração escrevem concorrentemente; limitar o pool evita
	// esgotar conexões do plano gratuito do banco
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn dentro de uma transação, com rollback em erro ou panic
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if err := tx.Rollback(); err != nil {
			return err
		}
		return err
	}

	return tx.Commit()
}

// EnsureSchema cria as tabelas do serviço caso ainda não existam. Idempotente:
// é executada uma única vez na abertura da conexão, durante a inicialização.
func (c *Connection) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS traffic_snapshots (
			id BIGSERIAL PRIMARY KEY,
			domain TEXT NOT NULL,
			month_year CHAR(7) NOT NULL,
			monthly_visits BIGINT,
			avg_session_duration_seconds BIGINT,
			bounce_rate DOUBLE PRECISION,
			pages_per_visit DOUBLE PRECISION,
			checked_at TIMESTAMPTZ NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (domain, month_year)
		)`,
		`CREATE TABLE IF NOT EXISTS latest_entries (
			domain TEXT PRIMARY KEY,
			month_year CHAR(7) NOT NULL,
			monthly_visits BIGINT,
			avg_session_duration_seconds BIGINT,
			bounce_rate DOUBLE PRECISION,
			pages_per_visit DOUBLE PRECISION,
			checked_at TIMESTAMPTZ NOT NULL,
			source TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS scrape_errors (
			id BIGSERIAL PRIMARY KEY,
			domain TEXT NOT NULL,
			day DATE NOT NULL,
			message TEXT NOT NULL,
			attempted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			retry_count INTEGER NOT NULL DEFAULT 1,
			UNIQUE (domain, day)
		)`,
		`CREATE TABLE IF NOT EXISTS scraper_metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_traffic_snapshots_domain ON traffic_snapshots (domain, month_year DESC)`,
	}

	for _, stmt := range statements {
		if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}

	return nil
}
