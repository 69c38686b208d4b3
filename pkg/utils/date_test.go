package utils

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthYear(t *testing.T) {
	assert.Equal(t, "2025-07", MonthYear(time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-01", MonthYear(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12", MonthYear(time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func TestPreviousMonthYear(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "Meio do ano",
			input:    time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
			expected: "2025-06",
		},
		{
			name:     "Virada de ano",
			input:    time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			expected: "2024-12",
		},
		{
			name:     "Dia 31 não pula mês na volta",
			input:    time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: "2025-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PreviousMonthYear(tt.input))
		})
	}
}

func TestParseMonthYear(t *testing.T) {
	parsed, err := ParseMonthYear("2025-07")
	assert.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.July, parsed.Month())

	_, err = ParseMonthYear("07-2025")
	assert.Error(t, err)

	_, err = ParseMonthYear("2025/07")
	assert.Error(t, err)
}

func TestMonthYearOrdenacaoLexicografica(t *testing.T) {
	// A ordenação de strings YYYY-MM precisa coincidir com a cronológica
	months := []string{"2025-02", "2024-12", "2025-01", "2024-02", "2025-10"}
	sort.Strings(months)

	assert.Equal(t, []string{"2024-02", "2024-12", "2025-01", "2025-02", "2025-10"}, months)
}
