package domain

import "sort"

// HistoricalMonthData é um par (mês contábil, visitas) minerado do gráfico
// histórico da página de resultados. Transitório: não precisa sobreviver
// além da gravação do snapshot.
type HistoricalMonthData struct {
	MonthYear     string `json:"month_year"` // Formato YYYY-MM
	MonthlyVisits int64  `json:"monthly_visits"`
}

// SortHistoryDescending ordena o histórico do mês mais recente para o mais
// antigo. A comparação lexicográfica é correta porque YYYY-MM tem zero à esquerda.
func SortHistoryDescending(history []HistoricalMonthData) {
	sort.Slice(history, func(i, j int) bool {
		return history[i].MonthYear > history[j].MonthYear
	})
}
