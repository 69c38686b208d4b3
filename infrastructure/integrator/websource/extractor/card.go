package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Janela máxima de caracteres após um rótulo quando o padrão ancorado falha
const labelWindowSize = 80

// Seletores prováveis de contêineres de cartão nos layouts já observados
var cardSelectors = []string{
	"[class*='result-card']",
	"[class*='domain-card']",
	"[class*='card']",
	"[class*='result-item']",
	"article",
}

// Seletores prováveis do título do cartão, onde o domínio costuma aparecer
var cardTitleSelectors = []string{
	"h1", "h2", "h3", "h4",
	"[class*='title']",
	"[class*='domain']",
	"a[href]",
}

// labelPattern é um extrator de métrica ancorado em rótulo: o padrão captura
// o valor logo após o texto do rótulo, e labels alimenta a busca em janela
// quando o padrão ancorado falha.
type labelPattern struct {
	pattern *regexp.Regexp
	labels  []string
	value   *regexp.Regexp
}

var (
	visitsPatterns = labelPattern{
		pattern: regexp.MustCompile(`(?i)(?:Total\s+)?(?:Monthly\s+)?Visits?\s*:?\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*[KMB]?)\b`),
		labels:  []string{"total visits", "monthly visits", "visits"},
		value:   regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*[KMB]?)\b`),
	}
	durationPatterns = labelPattern{
		pattern: regexp.MustCompile(`(?i)(?:Avg\.?\s+)?(?:Visit\s+|Session\s+)?Duration\s*:?\s*(\d{1,3}:[0-5]\d:[0-5]\d)`),
		labels:  []string{"avg. duration", "avg duration", "duration"},
		value:   regexp.MustCompile(`(\d{1,3}:[0-5]\d:[0-5]\d)`),
	}
	pagesPatterns = labelPattern{
		pattern: regexp.MustCompile(`(?i)Pages\s*(?:per|/)\s*Visit\s*:?\s*(\d{1,2}(?:\.\d+)?)\b`),
		labels:  []string{"pages per visit", "pages/visit", "pages / visit"},
		value:   regexp.MustCompile(`(\d{1,2}(?:\.\d+)?)\b`),
	}
	bouncePatterns = labelPattern{
		pattern: regexp.MustCompile(`(?i)Bounce\s+Rate\s*:?\s*(\d{1,3}(?:\.\d+)?\s*%)`),
		labels:  []string{"bounce rate", "bounce"},
		value:   regexp.MustCompile(`(\d{1,3}(?:\.\d+)?\s*%)`),
	}
)

type cardStrategy struct{}

func (s *cardStrategy) Name() string { return "card" }

func (s *cardStrategy) Extract(doc *goquery.Document, dict *DomainDictionary) []*Metrics {
	results := make([]*Metrics, 0)
	seen := make(map[string]bool)

	for _, selector := range cardSelectors {
		doc.Find(selector).Each(func(_ int, card *goquery.Selection) {
			text := normalizeWhitespace(card.Text())
			if text == "" {
				return
			}

			original, ok := findCardDomain(card, text, dict)
			if !ok || seen[original] {
				return
			}

			metrics := &Metrics{Domain: original, Scope: card}
			fillFromText(metrics, text)

			// Um cartão só é aceito com domínio E ao menos uma métrica
			if metrics.HasAny() {
				seen[original] = true
				results = append(results, metrics)
			}
		})

		if len(results) > 0 {
			break
		}
	}

	return results
}

// findCardDomain localiza o domínio do cartão: primeiro os sub-elementos de
// título prováveis, depois a varredura do texto completo contra o dicionário
func findCardDomain(card *goquery.Selection, text string, dict *DomainDictionary) (string, bool) {
	for _, selector := range cardTitleSelectors {
		var found string
		card.Find(selector).EachWithBreak(func(_ int, title *goquery.Selection) bool {
			candidate := strings.TrimSpace(title.Text())
			if candidate == "" {
				return true
			}
			if original, ok := dict.Match(candidate); ok {
				found = original
				return false
			}
			if original, ok := dict.FindInText(candidate); ok {
				found = original
				return false
			}
			return true
		})
		if found != "" {
			return found, true
		}
	}

	return dict.FindInText(text)
}

// fillFromText aplica os extratores ancorados em rótulo sobre o texto do
// cartão, com busca em janela limitada como fallback de cada um
func fillFromText(metrics *Metrics, text string) {
	if token, ok := applyLabelPattern(text, visitsPatterns); ok {
		if value, parsed := ParseMetricNumber(token); parsed {
			metrics.MonthlyVisits = &value
		}
	}

	if token, ok := applyLabelPattern(text, durationPatterns); ok {
		if value, parsed := ParseDurationToken(token); parsed {
			metrics.AvgSessionDurationSeconds = &value
		}
	}

	if token, ok := applyLabelPattern(text, pagesPatterns); ok {
		if value, parsed := ParsePagesPerVisit(token); parsed {
			metrics.PagesPerVisit = &value
		}
	}

	if token, ok := applyLabelPattern(text, bouncePatterns); ok {
		if value, parsed := ParseBounceRate(token); parsed {
			metrics.BounceRate = &value
		}
	}
}

// applyLabelPattern tenta o padrão ancorado; se falhar, procura o rótulo e
// aplica o extrator de valor em uma janela limitada de caracteres após ele
func applyLabelPattern(text string, lp labelPattern) (string, bool) {
	if match := lp.pattern.FindStringSubmatch(text); match != nil {
		return match[1], true
	}

	lower := strings.ToLower(text)
	for _, label := range lp.labels {
		index := strings.Index(lower, label)
		if index < 0 {
			continue
		}

		start := index + len(label)
		end := start + labelWindowSize
		if end > len(text) {
			end = len(text)
		}

		if match := lp.value.FindStringSubmatch(text[start:end]); match != nil {
			return match[1], true
		}
	}

	return "", false
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))
}
