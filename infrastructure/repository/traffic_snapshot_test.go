package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/web-traffic-api/internal/domain"
	"github.com/vfg2006/web-traffic-api/pkg/utils"
)

func TestIsFresh(t *testing.T) {
	now := time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		snapshot *domain.TrafficSnapshot
		expected bool
	}{
		{
			name:     "snapshot nulo nunca é fresco",
			snapshot: nil,
			expected: false,
		},
		{
			name: "snapshot do mês corrente dentro do prazo",
			snapshot: &domain.TrafficSnapshot{
				MonthYear: "2025-07",
				CheckedAt: now.Add(-48 * time.Hour),
			},
			expected: true,
		},
		{
			name: "snapshot verificado agora",
			snapshot: &domain.TrafficSnapshot{
				MonthYear: "2025-07",
				CheckedAt: now,
			},
			expected: true,
		},
		{
			name: "snapshot do mês corrente além do prazo",
			snapshot: &domain.TrafficSnapshot{
				MonthYear: "2025-07",
				CheckedAt: now.Add(-4 * 24 * time.Hour),
			},
			expected: false,
		},
		{
			name: "snapshot de mês anterior é sempre velho, mesmo recém-verificado",
			snapshot: &domain.TrafficSnapshot{
				MonthYear: "2025-06",
				CheckedAt: now.Add(-time.Hour),
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFresh(tt.snapshot, 3, now))
		})
	}
}

func TestIsFreshUsaOMesDoRelogioInformado(t *testing.T) {
	// A virada de mês invalida o cache independente da idade
	endOfJune := time.Date(2025, time.June, 30, 23, 0, 0, 0, time.UTC)
	startOfJuly := time.Date(2025, time.July, 1, 1, 0, 0, 0, time.UTC)

	snapshot := &domain.TrafficSnapshot{
		MonthYear: utils.MonthYear(endOfJune),
		CheckedAt: endOfJune,
	}

	assert.True(t, IsFresh(snapshot, 3, endOfJune))
	assert.False(t, IsFresh(snapshot, 3, startOfJuly))
}
