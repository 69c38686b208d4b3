package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/web-traffic-api/internal/domain"
)

func TestExtractHistoryNosSvg(t *testing.T) {
	// Meses e valores em nós de texto alternados, como o gráfico renderiza
	html := `<html><body><svg>
		<text>2025/03</text><text>900K</text>
		<text>2025/04</text><text>1.3M</text>
		<text>2025/05</text><text>980K</text>
		<text>2025/06</text><text>1.1M</text>
	</svg></body></html>`

	doc := mustDocument(t, html)
	history := ExtractHistory(doc.Selection)

	// Quatro meses minerados, mas a série é limitada aos três mais recentes
	require.Len(t, history, 3)
	assert.Equal(t, domain.HistoricalMonthData{MonthYear: "2025-06", MonthlyVisits: 1100000}, history[0])
	assert.Equal(t, domain.HistoricalMonthData{MonthYear: "2025-05", MonthlyVisits: 980000}, history[1])
	assert.Equal(t, domain.HistoricalMonthData{MonthYear: "2025-04", MonthlyVisits: 1300000}, history[2])
}

func TestExtractHistoryIgnoraRotulosDeEixoSemValor(t *testing.T) {
	// Eixo com apenas rótulos de mês consecutivos: o fragmento "05" do
	// rótulo vizinho não pode ser lido como valor do mês anterior
	html := `<html><body><svg>
		<text>2025/06</text>
		<text>2025/05</text>
		<text>2025/04</text>
	</svg></body></html>`

	doc := mustDocument(t, html)

	assert.Nil(t, ExtractHistory(doc.Selection))
}

func TestExtractHistoryVizinhoExigeSufixo(t *testing.T) {
	// Só o mês com valor sufixado no nó vizinho entra na série; o número
	// solto sem sufixo ao lado do outro rótulo é descartado
	html := `<html><body><svg>
		<text>2025/06</text><text>120</text>
		<text>2025/05</text><text>980K</text>
	</svg></body></html>`

	doc := mustDocument(t, html)
	history := ExtractHistory(doc.Selection)

	require.Len(t, history, 1)
	assert.Equal(t, domain.HistoricalMonthData{MonthYear: "2025-05", MonthlyVisits: 980000}, history[0])
}

func TestExtractHistoryTooltip(t *testing.T) {
	html := `<html><body>
		<div>2025/06 - Visits: 1.2M</div>
		<div>2025/05 - Visits: 997K</div>
	</body></html>`

	doc := mustDocument(t, html)
	history := ExtractHistory(doc.Selection)

	require.Len(t, history, 2)
	assert.Equal(t, "2025-06", history[0].MonthYear)
	assert.Equal(t, int64(1200000), history[0].MonthlyVisits)
	assert.Equal(t, "2025-05", history[1].MonthYear)
	assert.Equal(t, int64(997000), history[1].MonthlyVisits)
}

func TestExtractHistoryAtributosDeDados(t *testing.T) {
	// data-month no formato do gráfico e data-date já em YYYY-MM
	html := `<html><body><div class="chart-bars">
		<span data-month="2025/06" data-visits="1.2M"></span>
		<span data-date="2025-05" data-value="997K"></span>
	</div></body></html>`

	doc := mustDocument(t, html)
	history := ExtractHistory(doc.Selection)

	require.Len(t, history, 2)
	assert.Equal(t, "2025-06", history[0].MonthYear)
	assert.Equal(t, int64(1200000), history[0].MonthlyVisits)
	assert.Equal(t, "2025-05", history[1].MonthYear)
	assert.Equal(t, int64(997000), history[1].MonthlyVisits)
}

func TestExtractHistoryLinhasDeLista(t *testing.T) {
	html := `<html><body><ul>
		<li>2025/06 visits 1.2M</li>
		<li>2025/05 visits 997K</li>
	</ul></body></html>`

	doc := mustDocument(t, html)
	history := ExtractHistory(doc.Selection)

	require.Len(t, history, 2)
	assert.Equal(t, "2025-06", history[0].MonthYear)
	assert.Equal(t, "2025-05", history[1].MonthYear)
}

func TestExtractHistoryPrimeiraEstrategiaVence(t *testing.T) {
	// O SVG reporta 1.1M e o texto solto reporta 2.2M para o mesmo mês;
	// a primeira estratégia a minerar o mês prevalece
	html := `<html><body>
		<svg><text>2025/06</text><text>1.1M</text></svg>
		<div>2025/06 - Visits: 2.2M</div>
	</body></html>`

	doc := mustDocument(t, html)
	history := ExtractHistory(doc.Selection)

	require.NotEmpty(t, history)
	assert.Equal(t, "2025-06", history[0].MonthYear)
	assert.Equal(t, int64(1100000), history[0].MonthlyVisits)
}

func TestExtractHistorySemGrafico(t *testing.T) {
	doc := mustDocument(t, `<html><body><p>Sem série histórica nesta página</p></body></html>`)

	assert.Nil(t, ExtractHistory(doc.Selection))
	assert.Nil(t, ExtractHistory(nil))
}
