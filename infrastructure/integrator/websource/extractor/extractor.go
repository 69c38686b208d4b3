// Package extractor converte a página de resultados renderizada da fonte em
// registros estruturados por domínio. A fonte muda de layout com frequência,
// então a extração é uma cadeia de estratégias independentes (tabela →
// cartões → texto genérico): cada uma é uma função pura sobre o documento e
// a próxima só é tentada quando a anterior não produziu nenhum registro.
package extractor

import (
	"github.com/PuerkitoBio/goquery"
)

// Metrics é o resultado bruto de uma estratégia para um domínio solicitado.
// Scope aponta para o elemento de onde as métricas saíram (o cartão, a linha
// da tabela), usado depois para minerar a série histórica no mesmo contexto.
type Metrics struct {
	Domain                    string // Forma original solicitada
	MonthlyVisits             *int64
	AvgSessionDurationSeconds *int64
	BounceRate                *float64
	PagesPerVisit             *float64
	Scope                     *goquery.Selection
}

// HasAny indica se ao menos uma métrica foi extraída
func (m *Metrics) HasAny() bool {
	return m.MonthlyVisits != nil ||
		m.AvgSessionDurationSeconds != nil ||
		m.BounceRate != nil ||
		m.PagesPerVisit != nil
}

// Strategy é uma estratégia de layout independente
type Strategy interface {
	Name() string
	Extract(doc *goquery.Document, dict *DomainDictionary) []*Metrics
}

// DefaultChain é a cadeia de fallback de layouts, em ordem de prioridade
func DefaultChain() []Strategy {
	return []Strategy{
		&tableStrategy{},
		&cardStrategy{},
		&genericStrategy{},
	}
}

// Run executa a cadeia e retorna os registros da primeira estratégia que
// produziu resultado, junto com o nome dela para observabilidade
func Run(doc *goquery.Document, dict *DomainDictionary) ([]*Metrics, string) {
	for _, strategy := range DefaultChain() {
		results := strategy.Extract(doc, dict)
		if len(results) > 0 {
			return results, strategy.Name()
		}
	}

	return nil, ""
}
