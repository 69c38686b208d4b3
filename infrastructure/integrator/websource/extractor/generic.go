package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Janela de caracteres ao redor da primeira ocorrência textual do domínio
const genericWindowSize = 600

// genericStrategy é o último recurso: sem estrutura reconhecível, procura a
// primeira ocorrência textual de cada domínio solicitado e aplica os mesmos
// extratores de métrica em uma janela fixa ao redor dela.
type genericStrategy struct{}

func (s *genericStrategy) Name() string { return "generic" }

func (s *genericStrategy) Extract(doc *goquery.Document, dict *DomainDictionary) []*Metrics {
	body := doc.Find("body")
	text := normalizeWhitespace(body.Text())
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	results := make([]*Metrics, 0)

	for _, original := range dict.Requested() {
		normalized := dict.NormalizedOf(original)
		if normalized == "" {
			continue
		}

		index := strings.Index(lower, normalized)
		if index < 0 {
			continue
		}

		start := index - genericWindowSize/2
		if start < 0 {
			start = 0
		}
		end := index + genericWindowSize/2
		if end > len(text) {
			end = len(text)
		}

		metrics := &Metrics{Domain: original, Scope: body}
		fillFromText(metrics, text[start:end])

		if metrics.HasAny() {
			results = append(results, metrics)
		}
	}

	return results
}
