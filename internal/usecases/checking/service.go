package checking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/web-traffic-api/infrastructure/integrator/websource"
	"github.com/vfg2006/web-traffic-api/infrastructure/repository"
	"github.com/vfg2006/web-traffic-api/internal/config"
	"github.com/vfg2006/web-traffic-api/internal/domain"
	"github.com/vfg2006/web-traffic-api/pkg/utils"
	"golang.org/x/time/rate"
)

// Service implementa a interface TrafficChecker
type Service struct {
	cfg                   *config.Config
	webSourceService      websource.WebSourceIntegrator
	snapshotRepository    repository.TrafficSnapshotRepository
	scrapeErrorRepository repository.ScrapeErrorRepository
	metadataRepository    repository.MetadataRepository
	memCache              *memoryCache
	limiter               *rate.Limiter
	useCache              bool
}

// NewService cria uma nova instância do serviço de verificação de tráfego
func NewService(
	cfg *config.Config,
	webSourceService websource.WebSourceIntegrator,
	snapshotRepo repository.TrafficSnapshotRepository,
	scrapeErrorRepo repository.ScrapeErrorRepository,
) *Service {
	return &Service{
		cfg:                   cfg,
		webSourceService:      webSourceService,
		snapshotRepository:    snapshotRepo,
		scrapeErrorRepository: scrapeErrorRepo,
		memCache:              newMemoryCache(),
		limiter:               rate.NewLimiter(rate.Every(time.Duration(cfg.Scraper.GroupDelaySeconds)*time.Second), 1),
		useCache:              false, // Inicialmente não usa cache
	}
}

// WithCache habilita o atendimento por cache de snapshots
func (s *Service) WithCache(metadataRepo repository.MetadataRepository) *Service {
	s.metadataRepository = metadataRepo
	s.useCache = s.snapshotRepository != nil
	return s
}

// CheckDomains verifica as métricas de tráfego de um lote de domínios.
// Os domínios são normalizados e deduplicados preservando a ordem da
// primeira ocorrência; o retorno tem exatamente um registro por domínio
// normalizado, nessa mesma ordem, mesmo quando toda a raspagem falha.
func (s *Service) CheckDomains(ctx context.Context, domains []string, opts CheckOptions) (*domain.BatchResult, error) {
	ordered := normalizeAndDedupe(domains)
	if len(ordered) == 0 {
		return nil, fmt.Errorf("nenhum domínio válido informado")
	}

	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o identificador do lote: %w", err)
	}

	now := time.Now()

	var fresh map[string]*domain.TrafficSnapshot
	var stale []string

	if opts.ForceRefresh {
		fresh = map[string]*domain.TrafficSnapshot{}
		stale = ordered
	} else {
		fresh, stale = s.lookupFresh(ctx, ordered, now)
	}

	records := make(map[string]*domain.TrafficRecord, len(ordered))
	for domainName, snapshot := range fresh {
		records[domainName] = domain.RecordFromSnapshot(snapshot, true)
	}

	metadata := domain.BatchMetadata{
		BatchID:      batchID,
		TotalDomains: len(ordered),
		CacheHits:    len(fresh),
		CacheMisses:  len(stale),
	}

	logrus.WithFields(logrus.Fields{
		"batch_id":     batchID,
		"domains":      len(ordered),
		"cache_hits":   len(fresh),
		"cache_misses": len(stale),
		"force":        opts.ForceRefresh,
		"dry_run":      opts.DryRun,
	}).Info("checking: iniciando verificação de lote")

	if opts.DryRun {
		for _, domainName := range stale {
			records[domainName] = syntheticRecord(domainName, now)
		}
		return s.assembleResult(ordered, records, metadata), nil
	}

	groups := splitIntoGroups(stale, s.cfg.Scraper.MaxDomainsPerQuery)
	metadata.Groups = len(groups)

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		semaphore = make(chan struct{}, s.cfg.Scraper.MaxConcurrentGroups)
	)

	for index, group := range groups {
		// Espaçamento entre consultas para não sobrecarregar a fonte
		if err := s.limiter.Wait(ctx); err != nil {
			mu.Lock()
			for _, domainName := range group {
				records[domainName] = domain.NewErrorRecord(domainName, domain.ErrNavigationFailed)
			}
			metadata.GroupFailures = append(metadata.GroupFailures, fmt.Sprintf("grupo %d: %v", index+1, err))
			mu.Unlock()
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(index int, group []string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			groupRecords, failure := s.scrapeGroup(ctx, group, now)

			mu.Lock()
			defer mu.Unlock()

			for domainName, record := range groupRecords {
				records[domainName] = record
			}
			if failure != "" {
				metadata.GroupFailures = append(metadata.GroupFailures, fmt.Sprintf("grupo %d: %s", index+1, failure))
			}
		}(index, group)
	}

	wg.Wait()

	return s.assembleResult(ordered, records, metadata), nil
}

// scrapeGroup consulta a fonte para um grupo de domínios, persiste o que
// veio com métricas e registra as falhas. Uma falha de grupo nunca sobe
// como erro: vira registros de erro e uma entrada em GroupFailures.
func (s *Service) scrapeGroup(ctx context.Context, group []string, now time.Time) (map[string]*domain.TrafficRecord, string) {
	records := make(map[string]*domain.TrafficRecord, len(group))

	results, err := s.webSourceService.FetchBatch(ctx, group)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"domains": len(group),
			"error":   err.Error(),
		}).Error("checking: falha total na consulta do grupo")

		for _, domainName := range group {
			records[domainName] = domain.NewErrorRecord(domainName, domain.ErrNavigationFailed)
			s.registerFailure(ctx, domainName, domain.ErrNavigationFailed)
		}

		return records, err.Error()
	}

	currentMonth := utils.MonthYear(now)

	for _, result := range results {
		record := result.Record
		records[record.Domain] = record

		if !record.HasMetrics() {
			message := domain.ErrDomainNotFound
			if record.Error != nil {
				message = *record.Error
			}
			s.registerFailure(ctx, record.Domain, message)
			continue
		}

		record.GrowthRate = CalculateGrowthRate(record.MonthlyVisits, result.History, currentMonth)

		s.persistResult(ctx, record, result.History, now, currentMonth)
	}

	return records, ""
}

// persistResult grava o snapshot do mês corrente e os meses históricos
// minerados. Falha de persistência não invalida o resultado já extraído.
func (s *Service) persistResult(ctx context.Context, record *domain.TrafficRecord, history []domain.HistoricalMonthData, now time.Time, currentMonth string) {
	if s.snapshotRepository == nil {
		return
	}

	snapshot := record.Snapshot(now, s.cfg.Scraper.SourceTag)

	if err := s.snapshotRepository.SaveOrUpdate(ctx, snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"domain": record.Domain,
			"error":  err.Error(),
		}).Error("checking: falha ao persistir o snapshot do domínio")
		return
	}

	s.memCache.Set(snapshot)

	for _, month := range history {
		if month.MonthYear == currentMonth {
			continue
		}

		visits := month.MonthlyVisits
		historical := &domain.TrafficSnapshot{
			Domain:        record.Domain,
			MonthYear:     month.MonthYear,
			MonthlyVisits: &visits,
			CheckedAt:     now,
			Source:        s.cfg.Scraper.SourceTag,
		}

		if err := s.snapshotRepository.SaveOrUpdate(ctx, historical); err != nil {
			logrus.WithFields(logrus.Fields{
				"domain":     record.Domain,
				"month_year": month.MonthYear,
				"error":      err.Error(),
			}).Warn("checking: falha ao persistir mês histórico")
		}
	}
}

// GetLatestResults devolve o último snapshot conhecido de cada domínio sem
// disparar raspagem. Domínios sem snapshot recebem um registro provisório,
// com a mensagem da última falha do dia quando houver.
func (s *Service) GetLatestResults(ctx context.Context, domains []string) (*domain.BatchResult, error) {
	ordered := normalizeAndDedupe(domains)
	if len(ordered) == 0 {
		return nil, fmt.Errorf("nenhum domínio válido informado")
	}

	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o identificador do lote: %w", err)
	}

	stored, err := s.snapshotRepository.LookupLatestByDomains(ctx, ordered)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar os últimos snapshots: %w", err)
	}

	records := make([]*domain.TrafficRecord, 0, len(ordered))
	hits := 0

	for _, domainName := range ordered {
		snapshot, ok := stored[domainName]
		if ok && snapshot != nil {
			records = append(records, domain.RecordFromSnapshot(snapshot, true))
			hits++
			continue
		}

		message := domain.ErrStillScraping
		if s.scrapeErrorRepository != nil {
			if entry, err := s.scrapeErrorRepository.GetToday(ctx, domainName); err == nil && entry != nil {
				message = entry.Message
			}
		}

		records = append(records, domain.NewErrorRecord(domainName, message))
	}

	return &domain.BatchResult{
		Records: records,
		Metadata: domain.BatchMetadata{
			BatchID:      batchID,
			TotalDomains: len(ordered),
			CacheHits:    hits,
			CacheMisses:  len(ordered) - hits,
		},
	}, nil
}

// GetDomainHistory devolve a série mensal persistida de um domínio
func (s *Service) GetDomainHistory(ctx context.Context, domainName string, limit int) ([]*domain.TrafficSnapshot, error) {
	normalized := utils.NormalizeDomain(domainName)
	if normalized == "" {
		return nil, fmt.Errorf("domínio inválido: %q", domainName)
	}

	return s.snapshotRepository.GetHistory(ctx, normalized, limit)
}

// GetDomainMonth devolve o snapshot de um domínio em um mês contábil específico
func (s *Service) GetDomainMonth(ctx context.Context, domainName, monthYear string) (*domain.TrafficSnapshot, error) {
	normalized := utils.NormalizeDomain(domainName)
	if normalized == "" {
		return nil, fmt.Errorf("domínio inválido: %q", domainName)
	}

	if _, err := utils.ParseMonthYear(monthYear); err != nil {
		return nil, fmt.Errorf("mês contábil inválido: %q", monthYear)
	}

	return s.snapshotRepository.GetByDomainAndMonth(ctx, normalized, monthYear)
}

// GetAvailablePeriods devolve os períodos mensais presentes na base
func (s *Service) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	return s.snapshotRepository.GetAvailablePeriods(ctx)
}

// assembleResult monta a resposta final na ordem original do chamador.
// Qualquer domínio sem registro (indicativo de bug em algum grupo) recebe
// um registro de erro para manter o contrato de um registro por domínio.
func (s *Service) assembleResult(ordered []string, records map[string]*domain.TrafficRecord, metadata domain.BatchMetadata) *domain.BatchResult {
	final := make([]*domain.TrafficRecord, 0, len(ordered))

	for _, domainName := range ordered {
		record, ok := records[domainName]
		if !ok {
			logrus.WithField("domain", domainName).Warn("checking: domínio sem registro ao montar o lote")
			record = domain.NewErrorRecord(domainName, domain.ErrNavigationFailed)
		}
		final = append(final, record)
	}

	return &domain.BatchResult{
		Records:  final,
		Metadata: metadata,
	}
}

// registerFailure grava a falha do dia para o domínio, sem propagar erro
func (s *Service) registerFailure(ctx context.Context, domainName, message string) {
	if s.scrapeErrorRepository == nil {
		return
	}

	if err := s.scrapeErrorRepository.RegisterFailure(ctx, domainName, message); err != nil {
		logrus.WithFields(logrus.Fields{
			"domain": domainName,
			"error":  err.Error(),
		}).Warn("checking: falha ao registrar erro de raspagem")
	}
}

// normalizeAndDedupe normaliza os domínios e remove duplicatas preservando
// a ordem da primeira ocorrência. Entradas vazias após normalização caem fora.
func normalizeAndDedupe(domains []string) []string {
	seen := make(map[string]bool, len(domains))
	ordered := make([]string, 0, len(domains))

	for _, raw := range domains {
		normalized := utils.NormalizeDomain(raw)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		ordered = append(ordered, normalized)
	}

	return ordered
}

// splitIntoGroups divide os domínios em grupos do tamanho máximo aceito
// pela página de consulta em massa
func splitIntoGroups(domains []string, size int) [][]string {
	if len(domains) == 0 {
		return nil
	}

	if size <= 0 {
		size = 1
	}

	groups := make([][]string, 0, (len(domains)+size-1)/size)
	for start := 0; start < len(domains); start += size {
		end := start + size
		if end > len(domains) {
			end = len(domains)
		}
		groups = append(groups, domains[start:end])
	}

	return groups
}

// syntheticRecord produz um registro determinístico para execuções de teste
// sem abrir sessão de navegador
func syntheticRecord(domainName string, now time.Time) *domain.TrafficRecord {
	seed := int64(0)
	for _, r := range domainName {
		seed = seed*31 + int64(r)
	}
	if seed < 0 {
		seed = -seed
	}

	visits := 10_000 + seed%990_000
	durationSeconds := 60 + seed%540
	bounce := utils.RoundWithTwoDecimalPlace(25 + float64(seed%5000)/100)
	pages := utils.RoundWithTwoDecimalPlace(1.5 + float64(seed%650)/100)

	return &domain.TrafficRecord{
		Domain:                    domainName,
		MonthlyVisits:             &visits,
		AvgSessionDuration:        domain.FormatDuration(durationSeconds),
		AvgSessionDurationSeconds: &durationSeconds,
		BounceRate:                &bounce,
		PagesPerVisit:             &pages,
		CheckedAt:                 now,
	}
}
