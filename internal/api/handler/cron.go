package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/web-traffic-api/internal/scheduler"
	"github.com/vfg2006/web-traffic-api/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron necessários para acionamento manual
type CronJobServices struct {
	MonthlyRefreshService *scheduler.MonthlyRefreshService
}

// RunMonthlyRefresh aciona manualmente a atualização mensal de tráfego
func RunMonthlyRefresh(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunMonthlyRefresh")

		if services.MonthlyRefreshService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização mensal não disponível", nil)
			return
		}

		services.MonthlyRefreshService.TriggerManualSync()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Atualização mensal iniciada com sucesso",
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.MonthlyRefreshService != nil {
			status["monthly_refresh"] = services.MonthlyRefreshService.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
