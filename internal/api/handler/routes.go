package handler

import (
	"net/http"

	"github.com/vfg2006/web-traffic-api/internal/api/handler/router"
	"github.com/vfg2006/web-traffic-api/internal/usecases/authenticating"
	"github.com/vfg2006/web-traffic-api/internal/usecases/checking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Traffic(service checking.TrafficChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/traffic/check",
			Method:  http.MethodPost,
			Handler: CheckDomains(service),
		},
		{
			Path:    "/v1/traffic/results",
			Method:  http.MethodPost,
			Handler: GetLatestResults(service),
		},
		{
			Path:    "/v1/traffic/history/:domain",
			Method:  http.MethodGet,
			Handler: GetDomainHistory(service),
		},
		{
			Path:    "/v1/traffic/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/refresh",
			Method:  http.MethodPost,
			Handler: RunMonthlyRefresh(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
