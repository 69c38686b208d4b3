package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/web-traffic-api/infrastructure/database/postgres"
	"github.com/vfg2006/web-traffic-api/internal/domain"
)

type ScrapeErrorRepository interface {
	RegisterFailure(ctx context.Context, domainName, message string) error
	GetToday(ctx context.Context, domainName string) (*domain.ScrapeErrorEntry, error)
}

type scrapeErrorRepository struct {
	conn *postgres.Connection
}

func NewScrapeErrorRepository(conn *postgres.Connection) ScrapeErrorRepository {
	return &scrapeErrorRepository{
		conn: conn,
	}
}

// RegisterFailure registra uma falha de extração. Uma linha por domínio por
// dia: novas falhas no mesmo dia incrementam retry_count e atualizam a mensagem.
func (r *scrapeErrorRepository) RegisterFailure(ctx context.Context, domainName, message string) error {
	query := squirrel.StatementBuilder.
		Insert("scrape_errors").
		Columns("domain", "day", "message").
		Values(domainName, squirrel.Expr("CURRENT_DATE"), message).
		Suffix(`
			ON CONFLICT (domain, day) DO UPDATE SET
				message = EXCLUDED.message,
				attempted_at = NOW(),
				retry_count = scrape_errors.retry_count + 1
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao registrar falha de extração: %w", err)
	}

	return nil
}

func (r *scrapeErrorRepository) GetToday(ctx context.Context, domainName string) (*domain.ScrapeErrorEntry, error) {
	query, args, err := squirrel.
		Select("se.id, se.domain, se.message, se.attempted_at, se.retry_count").
		From("scrape_errors se").
		Where(squirrel.Eq{"se.domain": domainName}).
		Where(squirrel.Expr("se.day = CURRENT_DATE")).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.ScrapeErrorEntry{}
	row := r.conn.QueryRowContext(ctx, query, args...)
	err = row.Scan(&entry.ID, &entry.Domain, &entry.Message, &entry.AttemptedAt, &entry.RetryCount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de falha: %w", err)
	}

	return entry, nil
}
