package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/web-traffic-api/infrastructure/database/postgres"
	"github.com/vfg2006/web-traffic-api/internal/domain"
	"github.com/vfg2006/web-traffic-api/pkg/utils"
)

const (
	trafficSnapshotsTable = "traffic_snapshots ts"
	latestEntriesTable    = "latest_entries le"
)

type TrafficSnapshotRepository interface {
	GetByDomainAndMonth(ctx context.Context, domainName, monthYear string) (*domain.TrafficSnapshot, error)
	LookupLatestByDomains(ctx context.Context, domains []string) (map[string]*domain.TrafficSnapshot, error)
	SaveOrUpdate(ctx context.Context, snapshot *domain.TrafficSnapshot) error
	GetHistory(ctx context.Context, domainName string, limit int) ([]*domain.TrafficSnapshot, error)
	ListStaleDomains(ctx context.Context, currentMonthYear string) ([]string, error)
	DeleteOlderThan(ctx context.Context, months int) (int64, error)
	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
}

type trafficSnapshotRepository struct {
	conn *postgres.Connection
}

func NewTrafficSnapshotRepository(conn *postgres.Connection) TrafficSnapshotRepository {
	return &trafficSnapshotRepository{
		conn: conn,
	}
}

// IsFresh decide se um snapshot armazenado ainda satisfaz a cadência mensal
// da fonte. Fresco somente se o month_year for o mês contábil corrente E a
// idade desde checked_at não exceder maxAgeDays; mês diferente é sempre
// obsoleto, independentemente da idade.
func IsFresh(snapshot *domain.TrafficSnapshot, maxAgeDays int, now time.Time) bool {
	if snapshot == nil {
		return false
	}

	if snapshot.MonthYear != utils.MonthYear(now) {
		return false
	}

	age := now.Sub(snapshot.CheckedAt)
	return age <= time.Duration(maxAgeDays)*24*time.Hour
}

func (r *trafficSnapshotRepository) GetByDomainAndMonth(ctx context.Context, domainName, monthYear string) (*domain.TrafficSnapshot, error) {
	query, args, err := squirrel.
		Select("ts.id, ts.domain, ts.month_year, ts.monthly_visits, ts.avg_session_duration_seconds, ts.bounce_rate, ts.pages_per_visit, ts.checked_at, ts.source, ts.created_at, ts.updated_at").
		From(trafficSnapshotsTable).
		Where(squirrel.Eq{"ts.domain": domainName, "ts.month_year": monthYear}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	snapshot, err := scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot de tráfego: %w", err)
	}

	return snapshot, nil
}

// LookupLatestByDomains busca em lote a entrada mais recente de cada domínio.
// Retorna um mapa contendo apenas os domínios com dados armazenados.
func (r *trafficSnapshotRepository) LookupLatestByDomains(ctx context.Context, domains []string) (map[string]*domain.TrafficSnapshot, error) {
	result := make(map[string]*domain.TrafficSnapshot)
	if len(domains) == 0 {
		return result, nil
	}

	query, args, err := squirrel.
		Select("le.domain, le.month_year, le.monthly_visits, le.avg_session_duration_seconds, le.bounce_rate, le.pages_per_visit, le.checked_at, le.source").
		From(latestEntriesTable).
		Where(squirrel.Eq{"le.domain": domains}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return result, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		snapshot := &domain.TrafficSnapshot{}
		err := rows.Scan(
			&snapshot.Domain,
			&snapshot.MonthYear,
			&snapshot.MonthlyVisits,
			&snapshot.AvgSessionDurationSeconds,
			&snapshot.BounceRate,
			&snapshot.PagesPerVisit,
			&snapshot.CheckedAt,
			&snapshot.Source,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada mais recente: %w", err)
		}
		result[snapshot.Domain] = snapshot
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return result, nil
}

// SaveOrUpdate grava o snapshot mensal e a entrada mais recente na mesma
// transação: ou ambas as linhas são atualizadas, ou nenhuma. O upsert
// sobrescreve as métricas mas preserva o created_at original.
func (r *trafficSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.TrafficSnapshot) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		snapshotQuery := squirrel.StatementBuilder.
			Insert("traffic_snapshots").
			Columns("domain", "month_year", "monthly_visits", "avg_session_duration_seconds", "bounce_rate", "pages_per_visit", "checked_at", "source").
			Values(
				snapshot.Domain,
				snapshot.MonthYear,
				snapshot.MonthlyVisits,
				snapshot.AvgSessionDurationSeconds,
				snapshot.BounceRate,
				snapshot.PagesPerVisit,
				snapshot.CheckedAt,
				snapshot.Source,
			).
			Suffix(`
				ON CONFLICT (domain, month_year) DO UPDATE SET
					monthly_visits = EXCLUDED.monthly_visits,
					avg_session_duration_seconds = EXCLUDED.avg_session_duration_seconds,
					bounce_rate = EXCLUDED.bounce_rate,
					pages_per_visit = EXCLUDED.pages_per_visit,
					checked_at = EXCLUDED.checked_at,
					source = EXCLUDED.source,
					updated_at = NOW()
			`).
			PlaceholderFormat(squirrel.Dollar)

		sqlQuery, args, err := snapshotQuery.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err = tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao salvar snapshot de tráfego: %w", err)
		}

		// A entrada mais recente só avança: um re-scrape de mês antigo não
		// pode regredir o espelho do mês mais novo
		latestQuery := squirrel.StatementBuilder.
			Insert("latest_entries").
			Columns("domain", "month_year", "monthly_visits", "avg_session_duration_seconds", "bounce_rate", "pages_per_visit", "checked_at", "source").
			Values(
				snapshot.Domain,
				snapshot.MonthYear,
				snapshot.MonthlyVisits,
				snapshot.AvgSessionDurationSeconds,
				snapshot.BounceRate,
				snapshot.PagesPerVisit,
				snapshot.CheckedAt,
				snapshot.Source,
			).
			Suffix(`
				ON CONFLICT (domain) DO UPDATE SET
					month_year = EXCLUDED.month_year,
					monthly_visits = EXCLUDED.monthly_visits,
					avg_session_duration_seconds = EXCLUDED.avg_session_duration_seconds,
					bounce_rate = EXCLUDED.bounce_rate,
					pages_per_visit = EXCLUDED.pages_per_visit,
					checked_at = EXCLUDED.checked_at,
					source = EXCLUDED.source,
					updated_at = NOW()
				WHERE latest_entries.month_year <= EXCLUDED.month_year
			`).
			PlaceholderFormat(squirrel.Dollar)

		sqlQuery, args, err = latestQuery.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err = tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao atualizar entrada mais recente: %w", err)
		}

		return nil
	})
}

func (r *trafficSnapshotRepository) GetHistory(ctx context.Context, domainName string, limit int) ([]*domain.TrafficSnapshot, error) {
	builder := squirrel.
		Select("ts.id, ts.domain, ts.month_year, ts.monthly_visits, ts.avg_session_duration_seconds, ts.bounce_rate, ts.pages_per_visit, ts.checked_at, ts.source, ts.created_at, ts.updated_at").
		From(trafficSnapshotsTable).
		Where(squirrel.Eq{"ts.domain": domainName}).
		OrderBy("ts.month_year DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.TrafficSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

// ListStaleDomains retorna os domínios conhecidos cuja entrada mais recente
// não pertence ao mês contábil corrente, candidatos ao refresh proativo.
func (r *trafficSnapshotRepository) ListStaleDomains(ctx context.Context, currentMonthYear string) ([]string, error) {
	query, args, err := squirrel.
		Select("le.domain").
		From(latestEntriesTable).
		Where(squirrel.Lt{"le.month_year": currentMonthYear}).
		OrderBy("le.domain ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	domains := make([]string, 0)
	for rows.Next() {
		var domainName string
		if err := rows.Scan(&domainName); err != nil {
			return nil, fmt.Errorf("erro ao escanear domínio: %w", err)
		}
		domains = append(domains, domainName)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return domains, nil
}

func (r *trafficSnapshotRepository) DeleteOlderThan(ctx context.Context, months int) (int64, error) {
	cutoffTime := time.Now().AddDate(0, -months, 0)
	cutoffPeriod := utils.MonthYear(cutoffTime)

	query := squirrel.Delete("traffic_snapshots").
		Where(squirrel.Lt{"month_year": cutoffPeriod}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

// GetAvailablePeriods retorna todos os períodos disponíveis no formato YYYY-MM
func (r *trafficSnapshotRepository) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	query, args, err := squirrel.
		Select("DISTINCT month_year").
		From("traffic_snapshots").
		OrderBy("month_year ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	yearsSet := make(map[string]struct{})
	monthsSet := make(map[string]struct{})

	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
		if len(period) == 7 {
			yearsSet[period[:4]] = struct{}{}
			monthsSet[period[5:]] = struct{}{}
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	available := &domain.AvailablePeriods{Periods: periods}
	for year := range yearsSet {
		available.Years = append(available.Years, year)
	}
	for month := range monthsSet {
		available.Months = append(available.Months, month)
	}
	sort.Strings(available.Years)
	sort.Strings(available.Months)

	return available, nil
}

func scanSnapshot(row *sql.Row) (*domain.TrafficSnapshot, error) {
	snapshot := &domain.TrafficSnapshot{}

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Domain,
		&snapshot.MonthYear,
		&snapshot.MonthlyVisits,
		&snapshot.AvgSessionDurationSeconds,
		&snapshot.BounceRate,
		&snapshot.PagesPerVisit,
		&snapshot.CheckedAt,
		&snapshot.Source,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func scanSnapshotRows(rows *sql.Rows) (*domain.TrafficSnapshot, error) {
	snapshot := &domain.TrafficSnapshot{}

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.Domain,
		&snapshot.MonthYear,
		&snapshot.MonthlyVisits,
		&snapshot.AvgSessionDurationSeconds,
		&snapshot.BounceRate,
		&snapshot.PagesPerVisit,
		&snapshot.CheckedAt,
		&snapshot.Source,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}
