package handler

import (
	"net/http"

	"github.com/vfg2006/retail-insights-api/internal/api/handler/router"
	"github.com/vfg2006/retail-insights-api/internal/usecases/dashboard"
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

func Dashboard(service dashboard.Analytics) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
		{
			Path:    "/v1/dashboard/sales-over-time",
			Method:  http.MethodGet,
			Handler: GetSalesOverTime(service),
		},
		{
			Path:    "/v1/dashboard/breakdown",
			Method:  http.MethodGet,
			Handler: GetBreakdown(service),
		},
		{
			Path:    "/v1/dashboard/forecast",
			Method:  http.MethodGet,
			Handler: GetForecast(service),
		},
		{
			Path:    "/v1/dashboard/top-products",
			Method:  http.MethodGet,
			Handler: GetTopProducts(service),
		},
	}
}

func Strategic(service dashboard.Analytics) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/strategic/branch-performance",
			Method:  http.MethodGet,
			Handler: GetBranchPerformance(service),
		},
		{
			Path:    "/v1/strategic/location-analysis",
			Method:  http.MethodGet,
			Handler: GetLocationAnalysis(service),
		},
		{
			Path:    "/v1/strategic/trend-analysis",
			Method:  http.MethodGet,
			Handler: GetTrendAnalysis(service),
		},
	}
}

func Filters(service dashboard.Analytics) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/run/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
