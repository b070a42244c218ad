package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/traffic-report-api/internal/api/handler/router"
	"github.com/vfg2006/traffic-report-api/internal/usecases/reporting"
	"github.com/vfg2006/traffic-report-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(gatherer prometheus.Gatherer) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(gatherer),
		},
	}
}

func Reports(service reporting.ReportGenerator, authEnabled bool) []router.Route {
	accountAccess := []func(http.Handler) http.Handler{middleware.AccountAccess(authEnabled)}

	return []router.Route{
		{
			Path:        "/v1/adAccount/:id/report",
			Method:      http.MethodGet,
			Handler:     GetReport(service),
			Middlewares: accountAccess,
		},
		{
			Path:        "/v1/adAccount/:id/rules",
			Method:      http.MethodGet,
			Handler:     GetRules(service),
			Middlewares: accountAccess,
		},
		{
			Path:        "/v1/adAccount/:id/fatigue",
			Method:      http.MethodGet,
			Handler:     GetFatigue(service),
			Middlewares: accountAccess,
		},
	}
}

func CronJobs(services CronJobServices, authEnabled bool) []router.Route {
	operatorOnly := []func(http.Handler) http.Handler{middleware.OperatorOnly(authEnabled)}

	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: operatorOnly,
		},
	}
}
