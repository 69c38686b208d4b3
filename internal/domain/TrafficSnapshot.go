package domain

import (
	"time"
)

// TrafficSnapshot representa as métricas de tráfego de um domínio em um mês
// contábil específico, armazenadas no banco. Única por (domain, month_year);
// o upsert sobrescreve as métricas mas nunca o created_at original.
type TrafficSnapshot struct {
	ID                        int64     `json:"id"`
	Domain                    string    `json:"domain"`
	MonthYear                 string    `json:"month_year"` // Período no formato YYYY-MM
	MonthlyVisits             *int64    `json:"monthly_visits"`
	AvgSessionDurationSeconds *int64    `json:"avg_session_duration_seconds"`
	BounceRate                *float64  `json:"bounce_rate"`     // Percentual entre 0 e 100
	PagesPerVisit             *float64  `json:"pages_per_visit"` // Entre 0.1 e 20
	CheckedAt                 time.Time `json:"checked_at"`
	Source                    string    `json:"source"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// LatestEntry espelha o snapshot do mês mais recente observado para um
// domínio. Existe apenas para evitar varrer o histórico no caminho quente;
// é atualizada atomicamente junto com o snapshot correspondente.
type LatestEntry struct {
	Domain                    string    `json:"domain"`
	MonthYear                 string    `json:"month_year"`
	MonthlyVisits             *int64    `json:"monthly_visits"`
	AvgSessionDurationSeconds *int64    `json:"avg_session_duration_seconds"`
	BounceRate                *float64  `json:"bounce_rate"`
	PagesPerVisit             *float64  `json:"pages_per_visit"`
	CheckedAt                 time.Time `json:"checked_at"`
	Source                    string    `json:"source"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// Snapshot converte a entrada de cache rápido em um TrafficSnapshot
func (e *LatestEntry) Snapshot() *TrafficSnapshot {
	return &TrafficSnapshot{
		Domain:                    e.Domain,
		MonthYear:                 e.MonthYear,
		MonthlyVisits:             e.MonthlyVisits,
		AvgSessionDurationSeconds: e.AvgSessionDurationSeconds,
		BounceRate:                e.BounceRate,
		PagesPerVisit:             e.PagesPerVisit,
		CheckedAt:                 e.CheckedAt,
		Source:                    e.Source,
	}
}
