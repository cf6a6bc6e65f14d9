package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/trendspotter/insight-engine/internal/api/handler/router"
	"github.com/trendspotter/insight-engine/internal/scheduler"
	"github.com/trendspotter/insight-engine/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodGet,
			Handler: ListClientReports(service),
		},
		{
			Path:    "/v1/reports/:company",
			Method:  http.MethodGet,
			Handler: GetClientReport(service),
		},
	}
}

func Runs(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/run",
			Method:  http.MethodGet,
			Handler: GetRunSummary(service),
		},
		{
			Path:    "/v1/run/refresh",
			Method:  http.MethodPost,
			Handler: RefreshRun(service),
		},
	}
}

func Scheduler(syncService *scheduler.ReportSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scheduler/status",
			Method:  http.MethodGet,
			Handler: GetSchedulerStatus(syncService),
		},
		{
			Path:    "/v1/scheduler/sync",
			Method:  http.MethodPost,
			Handler: TriggerSchedulerSync(syncService),
		},
	}
}
