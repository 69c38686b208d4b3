package checking

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/web-traffic-api/infrastructure/repository"
	"github.com/vfg2006/web-traffic-api/internal/domain"
)

// memoryCache é a camada quente do cache de snapshots, na frente do banco.
// Guarda o último snapshot por domínio normalizado durante o processo.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]*domain.TrafficSnapshot
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[string]*domain.TrafficSnapshot),
	}
}

func (c *memoryCache) Get(domainName string) *domain.TrafficSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[domainName]
}

func (c *memoryCache) Set(snapshot *domain.TrafficSnapshot) {
	if snapshot == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[snapshot.Domain] = snapshot
}

// lookupFresh particiona os domínios entre acertos de cache e pendentes de
// raspagem. Consulta primeiro a camada de memória e depois o banco em uma
// única ida, aplicando a regra de frescor sobre ambos.
func (s *Service) lookupFresh(ctx context.Context, domains []string, now time.Time) (map[string]*domain.TrafficSnapshot, []string) {
	fresh := make(map[string]*domain.TrafficSnapshot, len(domains))

	if !s.useCache {
		return fresh, domains
	}

	maxAgeDays := s.cacheTTLDays(ctx)

	missing := make([]string, 0, len(domains))
	for _, domainName := range domains {
		snapshot := s.memCache.Get(domainName)
		if repository.IsFresh(snapshot, maxAgeDays, now) {
			fresh[domainName] = snapshot
			continue
		}
		missing = append(missing, domainName)
	}

	if len(missing) == 0 {
		return fresh, nil
	}

	stored, err := s.snapshotRepository.LookupLatestByDomains(ctx, missing)
	if err != nil {
		logrus.WithError(err).Error("checking: falha ao consultar o cache de snapshots, seguindo sem cache")
		return fresh, missing
	}

	stale := make([]string, 0, len(missing))
	for _, domainName := range missing {
		snapshot := stored[domainName]
		if repository.IsFresh(snapshot, maxAgeDays, now) {
			fresh[domainName] = snapshot
			s.memCache.Set(snapshot)
			continue
		}
		stale = append(stale, domainName)
	}

	return fresh, stale
}

// cacheTTLDays resolve o TTL do cache, com o valor operacional do banco
// sobrepondo o da configuração quando presente
func (s *Service) cacheTTLDays(ctx context.Context) int {
	if s.metadataRepository == nil {
		return s.cfg.Cache.TTLDays
	}

	ttl, err := s.metadataRepository.GetInt(ctx, repository.MetadataKeyCacheTTLDays, s.cfg.Cache.TTLDays)
	if err != nil {
		logrus.WithError(err).Debug("checking: falha ao ler TTL operacional, usando configuração")
		return s.cfg.Cache.TTLDays
	}

	return ttl
}
