package checking

import (
	"github.com/vfg2006/web-traffic-api/internal/domain"
	"github.com/vfg2006/web-traffic-api/pkg/utils"
)

// CalculateGrowthRate calcula a variação percentual das visitas do mês
// corrente sobre o mês anterior minerado da série histórica. O mês anterior
// é o mais recente da série diferente do mês corrente. Retorna nil quando
// não há base de comparação: sem visitas atuais, sem mês anterior ou mês
// anterior com zero visitas.
func CalculateGrowthRate(currentVisits *int64, history []domain.HistoricalMonthData, currentMonthYear string) *float64 {
	if currentVisits == nil || len(history) == 0 {
		return nil
	}

	sorted := make([]domain.HistoricalMonthData, len(history))
	copy(sorted, history)
	domain.SortHistoryDescending(sorted)

	var previous *domain.HistoricalMonthData
	for i := range sorted {
		if sorted[i].MonthYear != currentMonthYear {
			previous = &sorted[i]
			break
		}
	}

	if previous == nil || previous.MonthlyVisits <= 0 {
		return nil
	}

	rate := utils.RoundWithTwoDecimalPlace(
		(float64(*currentVisits) - float64(previous.MonthlyVisits)) / float64(previous.MonthlyVisits) * 100,
	)

	return &rate
}
