package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDocument(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestTableStrategyOrdemPadrao(t *testing.T) {
	html := `<html><body><table><tbody>
		<tr><td>example.com</td><td>997K</td><td>00:02:10</td><td>2.1</td><td>55%</td></tr>
		<tr><td>other.io</td><td>1,234,567</td><td>00:05:00</td><td>4.2</td><td>38.5%</td></tr>
	</tbody></table></body></html>`

	doc := mustDocument(t, html)
	dict := NewDomainDictionary([]string{"https://www.example.com", "other.io"})

	results, strategy := Run(doc, dict)

	assert.Equal(t, "table", strategy)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "https://www.example.com", first.Domain)
	require.NotNil(t, first.MonthlyVisits)
	assert.Equal(t, int64(997000), *first.MonthlyVisits)
	require.NotNil(t, first.AvgSessionDurationSeconds)
	assert.Equal(t, int64(130), *first.AvgSessionDurationSeconds)
	require.NotNil(t, first.PagesPerVisit)
	assert.InDelta(t, 2.1, *first.PagesPerVisit, 0.001)
	require.NotNil(t, first.BounceRate)
	assert.InDelta(t, 55.0, *first.BounceRate, 0.001)

	second := results[1]
	assert.Equal(t, "other.io", second.Domain)
	require.NotNil(t, second.MonthlyVisits)
	assert.Equal(t, int64(1234567), *second.MonthlyVisits)
}

func TestTableStrategyCabecalhoReordenado(t *testing.T) {
	// As colunas vêm em ordem diferente da padrão; o cabeçalho manda
	html := `<html><body><table>
		<thead><tr><th>Domain</th><th>Avg Visit Duration</th><th>Bounce Rate</th><th>Monthly Visits</th><th>Pages per Visit</th></tr></thead>
		<tbody><tr><td>example.com</td><td>00:03:25</td><td>43.92%</td><td>1.2M</td><td>3.4</td></tr></tbody>
	</table></body></html>`

	doc := mustDocument(t, html)
	dict := NewDomainDictionary([]string{"example.com"})

	results, _ := Run(doc, dict)
	require.Len(t, results, 1)

	metrics := results[0]
	require.NotNil(t, metrics.MonthlyVisits)
	assert.Equal(t, int64(1200000), *metrics.MonthlyVisits)
	require.NotNil(t, metrics.AvgSessionDurationSeconds)
	assert.Equal(t, int64(205), *metrics.AvgSessionDurationSeconds)
	require.NotNil(t, metrics.BounceRate)
	assert.InDelta(t, 43.92, *metrics.BounceRate, 0.001)
	require.NotNil(t, metrics.PagesPerVisit)
	assert.InDelta(t, 3.4, *metrics.PagesPerVisit, 0.001)
}

func TestTableStrategyDominioAusente(t *testing.T) {
	html := `<html><body><table><tbody>
		<tr><td>example.com</td><td>997K</td><td>00:02:10</td><td>2.1</td><td>55%</td></tr>
	</tbody></table></body></html>`

	doc := mustDocument(t, html)
	dict := NewDomainDictionary([]string{"example.com", "missing.net"})

	results, _ := Run(doc, dict)

	// O domínio ausente simplesmente não aparece; quem decide o erro é o chamador
	require.Len(t, results, 1)
	assert.Equal(t, "example.com", results[0].Domain)
}

func TestCardStrategy(t *testing.T) {
	html := `<html><body>
		<div class="result-card">
			<h3>www.example.com</h3>
			<p>Total Visits: 1.2M</p>
			<p>Avg. Duration 00:03:25</p>
			<p>Pages per Visit 3.4</p>
			<p>Bounce Rate: 43.92%</p>
		</div>
	</body></html>`

	doc := mustDocument(t, html)
	dict := NewDomainDictionary([]string{"example.com"})

	results, strategy := Run(doc, dict)

	assert.Equal(t, "card", strategy)
	require.Len(t, results, 1)

	metrics := results[0]
	assert.Equal(t, "example.com", metrics.Domain)
	require.NotNil(t, metrics.MonthlyVisits)
	assert.Equal(t, int64(1200000), *metrics.MonthlyVisits)
	require.NotNil(t, metrics.AvgSessionDurationSeconds)
	assert.Equal(t, int64(205), *metrics.AvgSessionDurationSeconds)
	require.NotNil(t, metrics.PagesPerVisit)
	assert.InDelta(t, 3.4, *metrics.PagesPerVisit, 0.001)
	require.NotNil(t, metrics.BounceRate)
	assert.InDelta(t, 43.92, *metrics.BounceRate, 0.001)
	assert.NotNil(t, metrics.Scope)
}

func TestGenericStrategy(t *testing.T) {
	// Sem tabela nem cartões reconhecíveis: janela de texto ao redor do domínio
	html := `<html><body>
		<div>Relatório de tráfego para example.com no período. Visits: 850K com Bounce Rate 61.3% registrado.</div>
	</body></html>`

	doc := mustDocument(t, html)
	dict := NewDomainDictionary([]string{"example.com"})

	results, strategy := Run(doc, dict)

	assert.Equal(t, "generic", strategy)
	require.Len(t, results, 1)

	metrics := results[0]
	require.NotNil(t, metrics.MonthlyVisits)
	assert.Equal(t, int64(850000), *metrics.MonthlyVisits)
	require.NotNil(t, metrics.BounceRate)
	assert.InDelta(t, 61.3, *metrics.BounceRate, 0.001)
}

func TestRunSemDados(t *testing.T) {
	doc := mustDocument(t, `<html><body><div>Nada por aqui</div></body></html>`)
	dict := NewDomainDictionary([]string{"example.com"})

	results, strategy := Run(doc, dict)

	assert.Empty(t, results)
	assert.Equal(t, "", strategy)
}

func TestDomainDictionary(t *testing.T) {
	dict := NewDomainDictionary([]string{"https://www.Example.com/path", "other.io", "example.com"})

	// Duplicata normalizada é descartada preservando a primeira forma original
	assert.Equal(t, []string{"https://www.Example.com/path", "other.io"}, dict.Requested())

	original, ok := dict.Match("example.com")
	assert.True(t, ok)
	assert.Equal(t, "https://www.Example.com/path", original)

	original, ok = dict.Match("www.example.com")
	assert.True(t, ok)
	assert.Equal(t, "https://www.Example.com/path", original)

	_, ok = dict.Match("unknown.net")
	assert.False(t, ok)

	original, ok = dict.FindInText("veja os dados de other.io aqui")
	assert.True(t, ok)
	assert.Equal(t, "other.io", original)
}
