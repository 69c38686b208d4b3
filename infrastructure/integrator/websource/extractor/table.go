package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Ordem padrão de colunas quando a tabela não tem cabeçalho reconhecível:
// domínio, visitas, duração média, páginas/visita, taxa de rejeição.
const (
	defaultVisitsColumn   = 1
	defaultDurationColumn = 2
	defaultPagesColumn    = 3
	defaultBounceColumn   = 4
)

type columnMap struct {
	visits   int
	duration int
	pages    int
	bounce   int
}

type tableStrategy struct{}

func (s *tableStrategy) Name() string { return "table" }

func (s *tableStrategy) Extract(doc *goquery.Document, dict *DomainDictionary) []*Metrics {
	results := make([]*Metrics, 0)
	seen := make(map[string]bool)

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		columns := inferColumns(table)

		rows := table.Find("tbody tr")
		if rows.Length() == 0 {
			rows = table.Find("tr")
		}

		rows.Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 2 {
				return
			}

			cellTexts := make([]string, 0, cells.Length())
			cells.Each(func(_ int, cell *goquery.Selection) {
				cellTexts = append(cellTexts, strings.TrimSpace(cell.Text()))
			})

			original, ok := matchRowDomain(cellTexts, dict)
			if !ok || seen[original] {
				return
			}

			metrics := &Metrics{Domain: original, Scope: row}
			fillFromCells(metrics, cellTexts, columns)

			if metrics.HasAny() {
				seen[original] = true
				results = append(results, metrics)
			}
		})

		// Uma tabela com resultados é suficiente; não misturar tabelas
		return len(results) == 0
	})

	return results
}

// inferColumns deduz o mapeamento coluna→métrica pelo texto do cabeçalho.
// Sem cabeçalho reconhecível, assume a ordem padrão de colunas da fonte.
func inferColumns(table *goquery.Selection) columnMap {
	columns := columnMap{
		visits:   defaultVisitsColumn,
		duration: defaultDurationColumn,
		pages:    defaultPagesColumn,
		bounce:   defaultBounceColumn,
	}

	headers := table.Find("thead th")
	if headers.Length() == 0 {
		headers = table.Find("tr").First().Find("th")
	}
	if headers.Length() == 0 {
		return columns
	}

	matched := false
	headers.Each(func(index int, header *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(header.Text()))
		// Duração antes de visitas: cabeçalhos como "Avg Visit Duration"
		// contêm as duas palavras
		switch {
		case strings.Contains(text, "duration") || strings.Contains(text, "avg"):
			columns.duration = index
			matched = true
		case strings.Contains(text, "bounce"):
			columns.bounce = index
			matched = true
		case strings.Contains(text, "page"):
			columns.pages = index
			matched = true
		case strings.Contains(text, "visit"):
			columns.visits = index
			matched = true
		}
	})

	if !matched {
		return columnMap{
			visits:   defaultVisitsColumn,
			duration: defaultDurationColumn,
			pages:    defaultPagesColumn,
			bounce:   defaultBounceColumn,
		}
	}

	return columns
}

// matchRowDomain localiza o domínio da linha: primeiro a célula inicial,
// depois qualquer célula
func matchRowDomain(cells []string, dict *DomainDictionary) (string, bool) {
	if len(cells) == 0 {
		return "", false
	}

	if original, ok := dict.Match(cells[0]); ok {
		return original, true
	}

	for _, cell := range cells[1:] {
		if original, ok := dict.Match(cell); ok {
			return original, true
		}
	}

	return "", false
}

// fillFromCells preenche as métricas a partir da coluna inferida; se a
// célula esperada não validar, varre as demais células da linha procurando
// um valor com o formato esperado
func fillFromCells(metrics *Metrics, cells []string, columns columnMap) {
	if value, ok := cellAt(cells, columns.visits, ParseVisitsCell); ok {
		metrics.MonthlyVisits = &value
	} else if value, ok := scanCells(cells, ParseVisitsCell); ok {
		metrics.MonthlyVisits = &value
	}

	if value, ok := cellAt(cells, columns.duration, ParseDurationToken); ok {
		metrics.AvgSessionDurationSeconds = &value
	} else if value, ok := scanCells(cells, ParseDurationToken); ok {
		metrics.AvgSessionDurationSeconds = &value
	}

	if value, ok := cellAt(cells, columns.pages, ParsePagesPerVisit); ok {
		metrics.PagesPerVisit = &value
	} else if value, ok := scanCells(cells, ParsePagesPerVisit); ok {
		metrics.PagesPerVisit = &value
	}

	if value, ok := cellAt(cells, columns.bounce, parseBouncePercentOnly); ok {
		metrics.BounceRate = &value
	} else if value, ok := scanCells(cells, parseBouncePercentOnly); ok {
		metrics.BounceRate = &value
	}
}

// parseBouncePercentOnly exige o símbolo % na varredura de células para não
// confundir com páginas por visita
func parseBouncePercentOnly(cell string) (float64, bool) {
	if !strings.Contains(cell, "%") {
		return 0, false
	}
	return ParseBounceRate(cell)
}

func cellAt[T any](cells []string, index int, parse func(string) (T, bool)) (T, bool) {
	var zero T
	if index < 0 || index >= len(cells) {
		return zero, false
	}
	return parse(cells[index])
}

func scanCells[T any](cells []string, parse func(string) (T, bool)) (T, bool) {
	for _, cell := range cells[1:] {
		if value, ok := parse(cell); ok {
			return value, true
		}
	}
	var zero T
	return zero, false
}
