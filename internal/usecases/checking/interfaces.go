package checking

import (
	"context"

	"github.com/vfg2006/web-traffic-api/internal/domain"
)

// CheckOptions ajusta o comportamento de uma verificação de lote
type CheckOptions struct {
	// ForceRefresh ignora o cache e consulta a fonte para todos os domínios
	ForceRefresh bool
	// DryRun devolve registros sintéticos sem abrir sessão de navegador
	DryRun bool
}

// TrafficChecker define a interface de verificação de tráfego de domínios
type TrafficChecker interface {
	// CheckDomains verifica as métricas de tráfego de um lote de domínios,
	// servindo do cache o que estiver fresco e raspando o restante
	CheckDomains(ctx context.Context, domains []string, opts CheckOptions) (*domain.BatchResult, error)

	// GetLatestResults devolve o último snapshot conhecido de cada domínio,
	// sem disparar raspagem
	GetLatestResults(ctx context.Context, domains []string) (*domain.BatchResult, error)

	// GetDomainHistory devolve a série mensal persistida de um domínio
	GetDomainHistory(ctx context.Context, domainName string, limit int) ([]*domain.TrafficSnapshot, error)

	// GetDomainMonth devolve o snapshot de um domínio em um mês contábil
	// específico, ou nil quando não há registro
	GetDomainMonth(ctx context.Context, domainName, monthYear string) (*domain.TrafficSnapshot, error)

	// GetAvailablePeriods devolve os períodos mensais presentes na base
	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
}
