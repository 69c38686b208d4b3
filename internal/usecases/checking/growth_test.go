package checking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/web-traffic-api/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCalculateGrowthRate(t *testing.T) {
	tests := []struct {
		name             string
		currentVisits    *int64
		history          []domain.HistoricalMonthData
		currentMonthYear string
		expected         *float64
	}{
		{
			name:          "crescimento sobre o mês anterior com arredondamento",
			currentVisits: int64Ptr(1196000),
			history: []domain.HistoricalMonthData{
				{MonthYear: "2025-06", MonthlyVisits: 1000000},
				{MonthYear: "2025-05", MonthlyVisits: 900000},
			},
			currentMonthYear: "2025-07",
			expected:         float64Ptr(19.6),
		},
		{
			name:          "mês corrente presente na série é ignorado como base",
			currentVisits: int64Ptr(1100000),
			history: []domain.HistoricalMonthData{
				{MonthYear: "2025-07", MonthlyVisits: 1100000},
				{MonthYear: "2025-06", MonthlyVisits: 1000000},
				{MonthYear: "2025-05", MonthlyVisits: 800000},
			},
			currentMonthYear: "2025-07",
			expected:         float64Ptr(10.0),
		},
		{
			name:          "série fora de ordem ainda usa o mês mais recente como base",
			currentVisits: int64Ptr(500000),
			history: []domain.HistoricalMonthData{
				{MonthYear: "2025-04", MonthlyVisits: 200000},
				{MonthYear: "2025-06", MonthlyVisits: 400000},
				{MonthYear: "2025-05", MonthlyVisits: 300000},
			},
			currentMonthYear: "2025-07",
			expected:         float64Ptr(25.0),
		},
		{
			name:          "queda resulta em taxa negativa",
			currentVisits: int64Ptr(750000),
			history: []domain.HistoricalMonthData{
				{MonthYear: "2025-06", MonthlyVisits: 1000000},
			},
			currentMonthYear: "2025-07",
			expected:         float64Ptr(-25.0),
		},
		{
			name:             "sem visitas atuais não há taxa",
			currentVisits:    nil,
			history:          []domain.HistoricalMonthData{{MonthYear: "2025-06", MonthlyVisits: 1000000}},
			currentMonthYear: "2025-07",
			expected:         nil,
		},
		{
			name:             "sem série histórica não há taxa",
			currentVisits:    int64Ptr(1000000),
			history:          nil,
			currentMonthYear: "2025-07",
			expected:         nil,
		},
		{
			name:          "mês anterior com zero visitas não serve de base",
			currentVisits: int64Ptr(1000000),
			history: []domain.HistoricalMonthData{
				{MonthYear: "2025-06", MonthlyVisits: 0},
			},
			currentMonthYear: "2025-07",
			expected:         nil,
		},
		{
			name:          "série contendo apenas o mês corrente não serve de base",
			currentVisits: int64Ptr(1000000),
			history: []domain.HistoricalMonthData{
				{MonthYear: "2025-07", MonthlyVisits: 1000000},
			},
			currentMonthYear: "2025-07",
			expected:         nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateGrowthRate(tt.currentVisits, tt.history, tt.currentMonthYear)

			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.InDelta(t, *tt.expected, *result, 0.001)
		})
	}
}

func TestCalculateGrowthRateNaoMutaASerie(t *testing.T) {
	history := []domain.HistoricalMonthData{
		{MonthYear: "2025-04", MonthlyVisits: 200000},
		{MonthYear: "2025-06", MonthlyVisits: 400000},
	}

	CalculateGrowthRate(int64Ptr(500000), history, "2025-07")

	// A ordenação acontece sobre uma cópia
	assert.Equal(t, "2025-04", history[0].MonthYear)
	assert.Equal(t, "2025-06", history[1].MonthYear)
}

func float64Ptr(v float64) *float64 { return &v }
