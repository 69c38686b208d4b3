package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/web-traffic-api/infrastructure/repository/mocks"
	"github.com/vfg2006/web-traffic-api/internal/config"
	"github.com/vfg2006/web-traffic-api/internal/domain"
	"github.com/vfg2006/web-traffic-api/internal/usecases/checking"
	checkingmocks "github.com/vfg2006/web-traffic-api/internal/usecases/checking/mocks"
	"github.com/vfg2006/web-traffic-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func refreshTestConfig(cutoffDay int) *config.Config {
	return &config.Config{
		Cache: config.Cache{
			ReleaseCutoffDay: cutoffDay,
		},
		MonthlyRefresh: config.MonthlyRefresh{
			CronSchedule:    "0 6 * * *",
			Enabled:         true,
			RetentionMonths: 24,
			RetentionSweep:  true,
			MaxDailyRetries: 2,
		},
	}
}

func TestRefreshStaleDomainsAntesDoCorte(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkingService := checkingmocks.NewMockTrafficChecker(ctrl)
	snapshotRepo := mocks.NewMockTrafficSnapshotRepository(ctrl)
	scrapeErrorRepo := mocks.NewMockScrapeErrorRepository(ctrl)
	metadataRepo := mocks.NewMockMetadataRepository(ctrl)

	// Dia de corte impossível: a atualização é adiada sem tocar na base
	metadataRepo.EXPECT().
		GetInt(gomock.Any(), gomock.Any(), 32).
		Return(32, nil)

	service := NewMonthlyRefreshService(checkingService, snapshotRepo, scrapeErrorRepo, metadataRepo, refreshTestConfig(32))

	service.refreshStaleDomains(context.Background())

	status := service.GetStatus()
	assert.False(t, status["sync_running"].(bool))
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestRefreshStaleDomainsAtualizaDefasados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkingService := checkingmocks.NewMockTrafficChecker(ctrl)
	snapshotRepo := mocks.NewMockTrafficSnapshotRepository(ctrl)
	scrapeErrorRepo := mocks.NewMockScrapeErrorRepository(ctrl)
	metadataRepo := mocks.NewMockMetadataRepository(ctrl)

	metadataRepo.EXPECT().
		GetInt(gomock.Any(), gomock.Any(), 1).
		Return(1, nil)

	snapshotRepo.EXPECT().
		ListStaleDomains(gomock.Any(), utils.MonthYear(time.Now())).
		Return([]string{"a.com", "b.io", "c.org"}, nil)

	// b.io já estourou o limite diário de tentativas e é pulado
	scrapeErrorRepo.EXPECT().GetToday(gomock.Any(), "a.com").Return(nil, nil)
	scrapeErrorRepo.EXPECT().GetToday(gomock.Any(), "b.io").
		Return(&domain.ScrapeErrorEntry{Domain: "b.io", RetryCount: 2}, nil)
	scrapeErrorRepo.EXPECT().GetToday(gomock.Any(), "c.org").
		Return(&domain.ScrapeErrorEntry{Domain: "c.org", RetryCount: 1}, nil)

	failure := domain.ErrNavigationFailed
	checkingService.EXPECT().
		CheckDomains(gomock.Any(), []string{"a.com", "c.org"}, checking.CheckOptions{ForceRefresh: true}).
		Return(&domain.BatchResult{
			Records: []*domain.TrafficRecord{
				{Domain: "a.com"},
				{Domain: "c.org", Error: &failure},
			},
		}, nil)

	snapshotRepo.EXPECT().
		DeleteOlderThan(gomock.Any(), 24).
		Return(int64(5), nil)

	service := NewMonthlyRefreshService(checkingService, snapshotRepo, scrapeErrorRepo, metadataRepo, refreshTestConfig(1))

	service.refreshStaleDomains(context.Background())

	status := service.GetStatus()
	assert.False(t, status["sync_running"].(bool))
	assert.Equal(t, 1, status["last_sync_refreshed"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestRefreshStaleDomainsSemDefasados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checkingService := checkingmocks.NewMockTrafficChecker(ctrl)
	snapshotRepo := mocks.NewMockTrafficSnapshotRepository(ctrl)
	scrapeErrorRepo := mocks.NewMockScrapeErrorRepository(ctrl)
	metadataRepo := mocks.NewMockMetadataRepository(ctrl)

	metadataRepo.EXPECT().
		GetInt(gomock.Any(), gomock.Any(), 1).
		Return(1, nil)

	snapshotRepo.EXPECT().
		ListStaleDomains(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	// Sem domínios defasados a limpeza de retenção ainda roda
	snapshotRepo.EXPECT().
		DeleteOlderThan(gomock.Any(), 24).
		Return(int64(0), nil)

	service := NewMonthlyRefreshService(checkingService, snapshotRepo, scrapeErrorRepo, metadataRepo, refreshTestConfig(1))

	service.refreshStaleDomains(context.Background())

	status := service.GetStatus()
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestStartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := refreshTestConfig(1)
	cfg.MonthlyRefresh.Enabled = false

	service := NewMonthlyRefreshService(
		checkingmocks.NewMockTrafficChecker(ctrl),
		mocks.NewMockTrafficSnapshotRepository(ctrl),
		mocks.NewMockScrapeErrorRepository(ctrl),
		mocks.NewMockMetadataRepository(ctrl),
		cfg,
	)

	require.NoError(t, service.Start(context.Background()))

	status := service.GetStatus()
	assert.False(t, status["sync_enabled"].(bool))
}
