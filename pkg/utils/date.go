package utils

import "time"

// MonthYearLayout é o formato do mês contábil usado nas tabelas de snapshots.
// O zero à esquerda garante que a ordenação lexicográfica seja cronológica.
const MonthYearLayout = "2006-01"

// MonthYear retorna o mês contábil (YYYY-MM) de um instante
func MonthYear(t time.Time) string {
	return t.Format(MonthYearLayout)
}

// PreviousMonthYear retorna o mês contábil anterior ao instante informado
func PreviousMonthYear(t time.Time) string {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return MonthYear(firstOfMonth.AddDate(0, -1, 0))
}

// ParseMonthYear valida uma string YYYY-MM e retorna o primeiro dia do mês
func ParseMonthYear(monthYear string) (time.Time, error) {
	return time.Parse(MonthYearLayout, monthYear)
}
