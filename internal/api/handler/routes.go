package handler

import (
	"net/http"

	"github.com/vfg2006/ipay-report-api/internal/api/handler/router"
	"github.com/vfg2006/ipay-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ipay-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ipay-report-api/pkg/metrics"
	"github.com/vfg2006/ipay-report-api/pkg/middleware"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
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
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	session := []func(http.Handler) http.Handler{middleware.RequireSession()}

	return []router.Route{
		{
			Path:        "/v1/pages",
			Method:      http.MethodGet,
			Handler:     GetPages(service),
			Middlewares: session,
		},
		{
			Path:        "/v1/periods",
			Method:      http.MethodGet,
			Handler:     GetPeriods(service),
			Middlewares: session,
		},
		{
			Path:        "/v1/reports/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: session,
		},
		{
			Path:        "/v1/reports/products/:page",
			Method:      http.MethodGet,
			Handler:     GetProductReport(service),
			Middlewares: session,
		},
		{
			Path:        "/v1/reports/products/:page/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyDetail(service),
			Middlewares: session,
		},
		{
			Path:        "/v1/reports/products/:page/daily/export",
			Method:      http.MethodGet,
			Handler:     ExportDailyDetail(service),
			Middlewares: session,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireSession()},
		},
	}
}
