package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMetricNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{"Número inteiro simples", "1234", 1234, true},
		{"Número com separador de milhar", "1,234,567", 1234567, true},
		{"Sufixo K", "1.2K", 1200, true},
		{"Sufixo M", "3.5M", 3500000, true},
		{"Sufixo B", "1B", 1000000000, true},
		{"Sufixo minúsculo", "2.7m", 2700000, true},
		{"Sufixo com espaço", "1.2 M", 1200000, true},
		{"Texto sem número", "N/A", 0, false},
		{"Vazio", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ParseMetricNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}

func TestParseDurationToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{"Duração típica", "00:03:25", 205, true},
		{"Uma hora", "01:00:00", 3600, true},
		{"Zero", "00:00:00", 0, true},
		{"Dentro de texto", "Avg Visit Duration 00:02:10", 130, true},
		{"Minutos acima de 59 rejeitado", "00:61:00", 0, false},
		{"Formato mm:ss rejeitado", "03:25", 0, false},
		{"Texto puro", "three minutes", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ParseDurationToken(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, value)
			}
		})
	}
}

func TestParseBounceRate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"Percentual típico", "43.92%", 43.92, true},
		{"Cem por cento", "100%", 100, true},
		{"Zero", "0%", 0, true},
		{"Acima de cem rejeitado", "150%", 0, false},
		{"Sem número", "bounce", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ParseBounceRate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, value, 0.001)
			}
		})
	}
}

func TestParsePagesPerVisit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		ok       bool
	}{
		{"Valor típico", "3.42", 3.42, true},
		{"Limite inferior", "0.1", 0.1, true},
		{"Limite superior", "20", 20, true},
		{"Abaixo do plausível rejeitado", "0.05", 0, false},
		{"Acima do plausível rejeitado", "150", 0, false},
		{"Zero rejeitado", "0", 0, false},
		{"Texto rejeitado", "pages", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ParsePagesPerVisit(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, value, 0.001)
			}
		})
	}
}

func TestParseVisitsCell(t *testing.T) {
	// A célula de visitas precisa conter apenas o número, para que uma
	// duração 00:03:25 na mesma linha não seja lida como visitas
	value, ok := ParseVisitsCell("1.2M")
	assert.True(t, ok)
	assert.Equal(t, int64(1200000), value)

	_, ok = ParseVisitsCell("00:03:25")
	assert.False(t, ok)

	_, ok = ParseVisitsCell("43.92%")
	assert.False(t, ok)
}
