package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/web-traffic-api/infrastructure/repository"
	"github.com/vfg2006/web-traffic-api/internal/config"
	"github.com/vfg2006/web-traffic-api/internal/usecases/checking"
	"github.com/vfg2006/web-traffic-api/pkg/utils"
)

// MonthlyRefreshConfig representa a configuração do agendador de atualização mensal
type MonthlyRefreshConfig struct {
	CronSchedule    string
	Enabled         bool
	RetentionMonths int
	RetentionSweep  bool
	MaxDailyRetries int
}

// MonthlyRefreshService agenda a re-raspagem dos domínios cujo snapshot mais
// recente ficou para trás do mês corrente. Roda diariamente, mas só age a
// partir do dia de corte do mês, quando a fonte já publicou os números novos.
type MonthlyRefreshService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyRefreshConfig
	appConfig           *config.Config
	checkingService     checking.TrafficChecker
	snapshotRepo        repository.TrafficSnapshotRepository
	scrapeErrorRepo     repository.ScrapeErrorRepository
	metadataRepo        repository.MetadataRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRefreshed   int
}

// NewMonthlyRefreshService cria uma nova instância do serviço de atualização mensal
func NewMonthlyRefreshService(
	checkingService checking.TrafficChecker,
	snapshotRepo repository.TrafficSnapshotRepository,
	scrapeErrorRepo repository.ScrapeErrorRepository,
	metadataRepo repository.MetadataRepository,
	appConfig *config.Config,
) *MonthlyRefreshService {
	refreshConfig := MonthlyRefreshConfig{
		CronSchedule:    appConfig.MonthlyRefresh.CronSchedule,
		Enabled:         appConfig.MonthlyRefresh.Enabled,
		RetentionMonths: appConfig.MonthlyRefresh.RetentionMonths,
		RetentionSweep:  appConfig.MonthlyRefresh.RetentionSweep,
		MaxDailyRetries: appConfig.MonthlyRefresh.MaxDailyRetries,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    refreshConfig.CronSchedule,
		"enabled":          refreshConfig.Enabled,
		"retention_months": refreshConfig.RetentionMonths,
		"retention_sweep":  refreshConfig.RetentionSweep,
	}).Info("Configuração do agendador de atualização mensal carregada")

	return &MonthlyRefreshService{
		scheduler:       scheduler,
		config:          refreshConfig,
		appConfig:       appConfig,
		checkingService: checkingService,
		snapshotRepo:    snapshotRepo,
		scrapeErrorRepo: scrapeErrorRepo,
		metadataRepo:    metadataRepo,
		syncRunning:     false,
	}
}

// Start inicia o agendador
func (s *MonthlyRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização mensal de tráfego desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização mensal de tráfego")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshStaleDomains(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização mensal de tráfego: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização mensal de tráfego")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshStaleDomains re-raspa todos os domínios defasados do mês corrente
func (s *MonthlyRefreshService) refreshStaleDomains(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if !s.pastReleaseCutoff(ctx, startTime) {
		logrus.WithField("day", startTime.Day()).Info("Antes do dia de corte da fonte, atualização mensal adiada")
		return
	}

	staleDomains, err := s.snapshotRepo.ListStaleDomains(ctx, utils.MonthYear(startTime))
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar domínios defasados para atualização mensal")
		return
	}

	staleDomains = s.filterExhaustedRetries(ctx, staleDomains)

	if len(staleDomains) == 0 {
		logrus.Info("Nenhum domínio defasado para atualização mensal")
		s.runRetentionSweep(ctx)
		s.lastSyncCompletedAt = time.Now()
		return
	}

	logrus.WithField("domains", len(staleDomains)).Info("Iniciando atualização mensal de domínios defasados")

	result, err := s.checkingService.CheckDomains(ctx, staleDomains, checking.CheckOptions{ForceRefresh: true})
	if err != nil {
		logrus.WithError(err).Error("Erro na atualização mensal de domínios defasados")
		return
	}

	refreshed := 0
	for _, record := range result.Records {
		if record.Error == nil {
			refreshed++
		}
	}
	s.lastSyncRefreshed = refreshed

	s.runRetentionSweep(ctx)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":  duration.String(),
		"domains":   len(staleDomains),
		"refreshed": refreshed,
		"failures":  len(result.Metadata.GroupFailures),
	}).Info("Atualização mensal de tráfego concluída")

	s.lastSyncCompletedAt = time.Now()
}

// pastReleaseCutoff indica se a fonte já deve ter publicado os números do
// mês. O dia de corte operacional do banco sobrepõe o da configuração.
func (s *MonthlyRefreshService) pastReleaseCutoff(ctx context.Context, now time.Time) bool {
	cutoff := s.appConfig.Cache.ReleaseCutoffDay

	if s.metadataRepo != nil {
		if value, err := s.metadataRepo.GetInt(ctx, repository.MetadataKeyReleaseCutoffDay, cutoff); err == nil {
			cutoff = value
		}
	}

	return now.Day() >= cutoff
}

// filterExhaustedRetries remove os domínios que já estouraram o limite
// diário de tentativas, para não martelar páginas estruturalmente quebradas
func (s *MonthlyRefreshService) filterExhaustedRetries(ctx context.Context, domains []string) []string {
	if s.scrapeErrorRepo == nil || s.config.MaxDailyRetries <= 0 {
		return domains
	}

	filtered := make([]string, 0, len(domains))
	for _, domainName := range domains {
		entry, err := s.scrapeErrorRepo.GetToday(ctx, domainName)
		if err == nil && entry != nil && entry.RetryCount >= s.config.MaxDailyRetries {
			logrus.WithFields(logrus.Fields{
				"domain":  domainName,
				"retries": entry.RetryCount,
			}).Debug("Domínio com tentativas esgotadas hoje, pulando")
			continue
		}
		filtered = append(filtered, domainName)
	}

	return filtered
}

// runRetentionSweep apaga snapshots além da janela de retenção, quando habilitado
func (s *MonthlyRefreshService) runRetentionSweep(ctx context.Context) {
	if !s.config.RetentionSweep || s.config.RetentionMonths <= 0 {
		return
	}

	deleted, err := s.snapshotRepo.DeleteOlderThan(ctx, s.config.RetentionMonths)
	if err != nil {
		logrus.WithError(err).Error("Erro na limpeza de retenção de snapshots")
		return
	}

	if deleted > 0 {
		logrus.WithFields(logrus.Fields{
			"deleted":          deleted,
			"retention_months": s.config.RetentionMonths,
		}).Info("Limpeza de retenção de snapshots concluída")
	}
}

// TriggerManualSync inicia manualmente uma atualização mensal
func (s *MonthlyRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização mensal manual de tráfego")
	go s.refreshStaleDomains(context.Background())
}

// GetStatus retorna o status atual da atualização mensal
func (s *MonthlyRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_refreshed":    s.lastSyncRefreshed,
	}
}
