package domain

import (
	"fmt"
	"time"
)

// Mensagens de erro padronizadas atribuídas a registros individuais.
// Distinguem falha de navegação (página não sinalizou prontidão) de falha
// estrutural (página carregou mas nenhuma estratégia extraiu dados).
const (
	ErrDomainNotFound   = "domain not found in results"
	ErrNavigationFailed = "upstream page failed to load or signal readiness"
	ErrStructuralDrift  = "upstream page loaded but contained no parseable data"
	ErrStillScraping    = "still scraping"
)

// TrafficRecord é o resultado externo produzido para cada domínio
// solicitado. Sempre existe exatamente um registro por domínio, mesmo em
// caso de falha total — nesse caso Error é preenchido e as métricas são nulas.
type TrafficRecord struct {
	Domain                    string    `json:"domain"`
	MonthlyVisits             *int64    `json:"monthly_visits"`
	AvgSessionDuration        string    `json:"avg_session_duration"` // Formato HH:MM:SS
	AvgSessionDurationSeconds *int64    `json:"avg_session_duration_seconds"`
	BounceRate                *float64  `json:"bounce_rate"`
	PagesPerVisit             *float64  `json:"pages_per_visit"`
	GrowthRate                *float64  `json:"growth_rate"` // Percentual com 2 casas decimais
	CheckedAt                 time.Time `json:"checked_at"`
	FromCache                 bool      `json:"from_cache"`
	Error                     *string   `json:"error"`
}

// NewErrorRecord cria um registro de erro para um domínio sem dados
func NewErrorRecord(domain, message string) *TrafficRecord {
	return &TrafficRecord{
		Domain:    domain,
		CheckedAt: time.Now(),
		Error:     &message,
	}
}

// HasMetrics indica se o registro contém ao menos uma métrica extraída
func (r *TrafficRecord) HasMetrics() bool {
	return r.MonthlyVisits != nil ||
		r.AvgSessionDurationSeconds != nil ||
		r.BounceRate != nil ||
		r.PagesPerVisit != nil
}

// FormatDuration formata segundos como HH:MM:SS
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// Snapshot converte o registro em um TrafficSnapshot do mês contábil corrente
func (r *TrafficRecord) Snapshot(now time.Time, source string) *TrafficSnapshot {
	return &TrafficSnapshot{
		Domain:                    r.Domain,
		MonthYear:                 now.Format("2006-01"),
		MonthlyVisits:             r.MonthlyVisits,
		AvgSessionDurationSeconds: r.AvgSessionDurationSeconds,
		BounceRate:                r.BounceRate,
		PagesPerVisit:             r.PagesPerVisit,
		CheckedAt:                 r.CheckedAt,
		Source:                    source,
	}
}

// RecordFromSnapshot reconstrói um TrafficRecord a partir de um snapshot em cache
func RecordFromSnapshot(s *TrafficSnapshot, fromCache bool) *TrafficRecord {
	record := &TrafficRecord{
		Domain:                    s.Domain,
		MonthlyVisits:             s.MonthlyVisits,
		AvgSessionDurationSeconds: s.AvgSessionDurationSeconds,
		BounceRate:                s.BounceRate,
		PagesPerVisit:             s.PagesPerVisit,
		CheckedAt:                 s.CheckedAt,
		FromCache:                 fromCache,
	}

	if s.AvgSessionDurationSeconds != nil {
		record.AvgSessionDuration = FormatDuration(*s.AvgSessionDurationSeconds)
	}

	return record
}
