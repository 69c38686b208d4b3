package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/vfg2006/web-traffic-api/internal/domain"
)

// Máximo de meses históricos minerados do gráfico
const maxHistoryEntries = 3

var (
	// Mês no formato do gráfico da fonte: 2025/07
	chartMonthRegex = regexp.MustCompile(`\b(\d{4})/(0[1-9]|1[0-2])\b`)

	// Padrões estilo tooltip "2025/07 ... visits ... 1.2M", do separador
	// mais estrito ao mais frouxo
	tooltipPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d{4})/(0[1-9]|1[0-2])\b\s*[-–:]?\s*visits?\s*:?\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*[KMB]?)\b`),
		regexp.MustCompile(`(?i)\b(\d{4})/(0[1-9]|1[0-2])\b[^0-9]{0,20}visits?[^0-9]{0,10}(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*[KMB]?)\b`),
		regexp.MustCompile(`(?i)\b(\d{4})/(0[1-9]|1[0-2])\b[^0-9]{0,60}?(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*[KMB])\b`),
	}

	historyValueRegex = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*[KMB]?)\b`)

	// Variante com sufixo obrigatório, usada em nós vizinhos para não
	// confundir o fragmento de mês de um rótulo de eixo com um valor
	historySuffixValueRegex = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*[KMB])\b`)
)

// ExtractHistory minera a série histórica de visitas do widget de gráfico
// dentro do escopo informado (um cartão ou o documento inteiro). Estratégias
// independentes são aplicadas em ordem sobre o mesmo conteúdo; a primeira a
// reportar um mês vence e duplicatas são rejeitadas. Nunca falha: qualquer
// problema degrada para uma sequência vazia.
func ExtractHistory(scope *goquery.Selection) []domain.HistoricalMonthData {
	if scope == nil {
		return nil
	}

	byMonth := make(map[string]int64)

	mineSvgTextNodes(scope, byMonth)
	mineTooltipText(scope, byMonth)
	mineChartElements(scope, byMonth)
	mineDataAttributes(scope, byMonth)
	mineRows(scope, byMonth)

	if len(byMonth) == 0 {
		return nil
	}

	history := make([]domain.HistoricalMonthData, 0, len(byMonth))
	for monthYear, visits := range byMonth {
		history = append(history, domain.HistoricalMonthData{
			MonthYear:     monthYear,
			MonthlyVisits: visits,
		})
	}

	domain.SortHistoryDescending(history)

	if len(history) > maxHistoryEntries {
		history = history[:maxHistoryEntries]
	}

	return history
}

// mineSvgTextNodes varre os nós de texto do gráfico vetorial procurando um
// mês adjacente a um número com sufixo — no mesmo nó ou no nó seguinte
func mineSvgTextNodes(scope *goquery.Selection, byMonth map[string]int64) {
	texts := make([]string, 0)
	scope.Find("svg text, svg tspan").Each(func(_ int, node *goquery.Selection) {
		if text := strings.TrimSpace(node.Text()); text != "" {
			texts = append(texts, text)
		}
	})

	for i, text := range texts {
		month := matchChartMonth(text)
		if month == "" {
			continue
		}

		// O valor pode estar no mesmo nó ou no nó de texto vizinho; no
		// vizinho só tokens com sufixo K/M/B são aceitos
		candidates := []string{historyValueRegex.FindString(chartMonthRegex.ReplaceAllString(text, ""))}
		if i+1 < len(texts) {
			candidates = append(candidates, historySuffixValueRegex.FindString(texts[i+1]))
		}

		for _, match := range candidates {
			if match == "" {
				continue
			}
			if visits, ok := ParseMetricNumber(match); ok && visits > 0 {
				recordMonth(byMonth, month, visits)
				break
			}
		}
	}
}

// mineTooltipText aplica os padrões estilo tooltip sobre o texto completo,
// do separador mais estrito ao mais frouxo
func mineTooltipText(scope *goquery.Selection, byMonth map[string]int64) {
	text := normalizeWhitespace(scope.Text())
	if text == "" {
		return
	}

	for _, pattern := range tooltipPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			month := fmt.Sprintf("%s-%s", match[1], match[2])
			if visits, ok := ParseMetricNumber(match[3]); ok && visits > 0 {
				recordMonth(byMonth, month, visits)
			}
		}
	}
}

// mineChartElements varre o texto de elementos rotulados como gráfico
func mineChartElements(scope *goquery.Selection, byMonth map[string]int64) {
	scope.Find("[class*='chart'], [class*='graph'], [id*='chart']").Each(func(_ int, element *goquery.Selection) {
		text := normalizeWhitespace(element.Text())
		for _, pattern := range tooltipPatterns {
			for _, match := range pattern.FindAllStringSubmatch(text, -1) {
				month := fmt.Sprintf("%s-%s", match[1], match[2])
				if visits, ok := ParseMetricNumber(match[3]); ok && visits > 0 {
					recordMonth(byMonth, month, visits)
				}
			}
		}
	})
}

// mineDataAttributes lê atributos de dados explícitos quando o gráfico os expõe
func mineDataAttributes(scope *goquery.Selection, byMonth map[string]int64) {
	scope.Find("[data-month], [data-date]").Each(func(_ int, element *goquery.Selection) {
		rawMonth, ok := element.Attr("data-month")
		if !ok {
			rawMonth, _ = element.Attr("data-date")
		}

		month := matchChartMonth(rawMonth)
		if month == "" {
			// Os atributos também podem já vir no formato YYYY-MM
			if regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])`).MatchString(rawMonth) {
				month = rawMonth[:7]
			} else {
				return
			}
		}

		rawValue, ok := element.Attr("data-visits")
		if !ok {
			rawValue, ok = element.Attr("data-value")
		}
		if !ok {
			return
		}

		if visits, parsed := ParseMetricNumber(rawValue); parsed && visits > 0 {
			recordMonth(byMonth, month, visits)
		}
	})
}

// mineRows varre linhas de tabela e itens de lista com o mesmo padrão
func mineRows(scope *goquery.Selection, byMonth map[string]int64) {
	scope.Find("tr, li").Each(func(_ int, row *goquery.Selection) {
		text := normalizeWhitespace(row.Text())
		for _, pattern := range tooltipPatterns {
			if match := pattern.FindStringSubmatch(text); match != nil {
				month := fmt.Sprintf("%s-%s", match[1], match[2])
				if visits, ok := ParseMetricNumber(match[3]); ok && visits > 0 {
					recordMonth(byMonth, month, visits)
				}
				break
			}
		}
	})
}

// matchChartMonth converte um mês YYYY/MM do gráfico para a chave YYYY-MM
func matchChartMonth(text string) string {
	match := chartMonthRegex.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return fmt.Sprintf("%s-%s", match[1], match[2])
}

// recordMonth grava um mês minerado; a primeira estratégia a reportar vence
func recordMonth(byMonth map[string]int64, monthYear string, visits int64) {
	if _, exists := byMonth[monthYear]; exists {
		return
	}
	byMonth[monthYear] = visits
}
