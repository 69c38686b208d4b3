package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/web-traffic-api/infrastructure/database/postgres"
)

// Chaves conhecidas da tabela de metadados do scraper
const (
	MetadataKeyCacheTTLDays     = "cache_ttl_days"
	MetadataKeyReleaseCutoffDay = "release_cutoff_day"
)

type MetadataRepository interface {
	Get(ctx context.Context, key string) (string, error)
	GetInt(ctx context.Context, key string, fallback int) (int, error)
	Set(ctx context.Context, key, value string) error
}

type metadataRepository struct {
	conn *postgres.Connection
}

func NewMetadataRepository(conn *postgres.Connection) MetadataRepository {
	return &metadataRepository{
		conn: conn,
	}
}

func (r *metadataRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := squirrel.
		Select("sm.value").
		From("scraper_metadata sm").
		Where(squirrel.Eq{"sm.key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value string
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao buscar metadado %s: %w", key, err)
	}

	return value, nil
}

// GetInt lê um metadado inteiro, retornando fallback quando ausente ou inválido
func (r *metadataRepository) GetInt(ctx context.Context, key string, fallback int) (int, error) {
	value, err := r.Get(ctx, key)
	if err != nil {
		return fallback, err
	}
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback, nil
	}

	return parsed, nil
}

func (r *metadataRepository) Set(ctx context.Context, key, value string) error {
	query := squirrel.StatementBuilder.
		Insert("scraper_metadata").
		Columns("key", "value").
		Values(key, value).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar metadado %s: %w", key, err)
	}

	return nil
}
