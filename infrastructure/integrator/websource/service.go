package websource

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/web-traffic-api/infrastructure/integrator/websource/browserclient"
	"github.com/vfg2006/web-traffic-api/infrastructure/integrator/websource/extractor"
	"github.com/vfg2006/web-traffic-api/internal/config"
	"github.com/vfg2006/web-traffic-api/internal/domain"
)

// Seletores que sinalizam que a página de resultados terminou de renderizar,
// na ordem de probabilidade de presença
var readinessSelectors = []string{
	"table tbody tr",
	"[class*='result-card']",
	"[class*='result']",
}

// ExtractionResult agrupa o registro de um domínio com sua série histórica
type ExtractionResult struct {
	Record  *domain.TrafficRecord
	History []domain.HistoricalMonthData
}

type WebSourceIntegrator interface {
	FetchBatch(ctx context.Context, domains []string) ([]ExtractionResult, error)
}

type Integrator struct {
	cfg    *config.Config
	Client browserclient.Client
}

func New(cfg *config.Config, client browserclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchBatch consulta a fonte para um grupo de até MaxDomainsPerQuery
// domínios em uma única sessão de navegador e devolve exatamente um
// resultado por domínio solicitado, mesmo em caso de falha total. Um
// grupo vazio é válido e retorna vazio sem abrir sessão.
func (s *Integrator) FetchBatch(ctx context.Context, domains []string) ([]ExtractionResult, error) {
	if len(domains) == 0 {
		return []ExtractionResult{}, nil
	}

	if len(domains) > s.cfg.Scraper.MaxDomainsPerQuery {
		return nil, fmt.Errorf(
			"grupo com %d domínios excede o limite de %d por consulta",
			len(domains), s.cfg.Scraper.MaxDomainsPerQuery,
		)
	}

	pageURL := s.buildQueryURL(domains)

	html, err := s.Client.FetchRenderedHTML(ctx, pageURL, readinessSelectors)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"domains": len(domains),
			"error":   err.Error(),
		}).Error("websource: falha de navegação na página de resultados")

		return errorResults(domains, domain.ErrNavigationFailed), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logrus.WithError(err).Error("websource: falha ao interpretar o HTML capturado")
		return errorResults(domains, domain.ErrNavigationFailed), nil
	}

	dict := extractor.NewDomainDictionary(domains)

	metricsList, strategy := extractor.Run(doc, dict)
	if len(metricsList) == 0 {
		logrus.WithField("domains", len(domains)).Warn("websource: página carregada sem dados extraíveis")
		return errorResults(domains, domain.ErrStructuralDrift), nil
	}

	logrus.WithFields(logrus.Fields{
		"strategy":  strategy,
		"extracted": len(metricsList),
		"requested": len(domains),
	}).Debug("websource: extração concluída")

	byDomain := make(map[string]*extractor.Metrics, len(metricsList))
	for _, metrics := range metricsList {
		byDomain[metrics.Domain] = metrics
	}

	results := make([]ExtractionResult, 0, len(domains))
	for _, requested := range dict.Requested() {
		metrics, ok := byDomain[requested]
		if !ok {
			results = append(results, ExtractionResult{
				Record: domain.NewErrorRecord(requested, domain.ErrDomainNotFound),
			})
			continue
		}

		results = append(results, ExtractionResult{
			Record:  recordFromMetrics(metrics),
			History: s.fetchHistory(ctx, doc, metrics),
		})
	}

	return results, nil
}

// buildQueryURL monta a URL de consulta em massa com os domínios separados
// por vírgula, como a página espera
func (s *Integrator) buildQueryURL(domains []string) string {
	query := url.Values{}
	query.Set("domains", strings.Join(domains, ","))

	return fmt.Sprintf("%s?%s", s.cfg.Scraper.BulkURL, query.Encode())
}

// fetchHistory minera a série histórica do escopo do domínio com um tempo
// limite próprio. A série é melhor esforço: estourado o limite, o resultado
// segue sem histórico
func (s *Integrator) fetchHistory(ctx context.Context, doc *goquery.Document, metrics *extractor.Metrics) []domain.HistoricalMonthData {
	timeout := time.Duration(s.cfg.Scraper.HistoryTimeoutMillis) * time.Millisecond

	scope := metrics.Scope
	if scope == nil {
		scope = doc.Selection
	}

	done := make(chan []domain.HistoricalMonthData, 1)

	go func() {
		done <- extractor.ExtractHistory(scope)
	}()

	select {
	case history := <-done:
		return history
	case <-time.After(timeout):
		logrus.WithField("domain", metrics.Domain).Debug("websource: mineração de histórico excedeu o tempo limite")
		return nil
	case <-ctx.Done():
		return nil
	}
}

// recordFromMetrics converte as métricas extraídas em um TrafficRecord
func recordFromMetrics(metrics *extractor.Metrics) *domain.TrafficRecord {
	record := &domain.TrafficRecord{
		Domain:                    metrics.Domain,
		MonthlyVisits:             metrics.MonthlyVisits,
		AvgSessionDurationSeconds: metrics.AvgSessionDurationSeconds,
		BounceRate:                metrics.BounceRate,
		PagesPerVisit:             metrics.PagesPerVisit,
		CheckedAt:                 time.Now(),
	}

	if metrics.AvgSessionDurationSeconds != nil {
		record.AvgSessionDuration = domain.FormatDuration(*metrics.AvgSessionDurationSeconds)
	}

	if !record.HasMetrics() {
		message := domain.ErrDomainNotFound
		record.Error = &message
	}

	return record
}

// errorResults devolve um resultado de erro para cada domínio solicitado
func errorResults(domains []string, message string) []ExtractionResult {
	results := make([]ExtractionResult, 0, len(domains))
	for _, d := range domains {
		results = append(results, ExtractionResult{
			Record: domain.NewErrorRecord(d, message),
		})
	}
	return results
}
