package handler

import (
	"net/http"

	"github.com/finsight/financial-insights-api/internal/api/handler/router"
	"github.com/finsight/financial-insights-api/internal/usecases/dashboard"
	"github.com/finsight/financial-insights-api/internal/usecases/exporting"
	"github.com/finsight/financial-insights-api/internal/usecases/filtering"
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

// Catalog retorna as rotas que alimentam os controles de filtro do
// dashboard (seletores de categoria, empresa e ano)
func Catalog(service filtering.Resolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
		{
			Path:    "/v1/categories/:category/companies",
			Method:  http.MethodGet,
			Handler: ListCompanies(service),
		},
		{
			Path:    "/v1/categories/:category/companies/:company/years",
			Method:  http.MethodGet,
			Handler: ListYears(service),
		},
	}
}

func Dashboard(service dashboard.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/records",
			Method:  http.MethodGet,
			Handler: GetRecords(service),
		},
	}
}

func Exports(resolver filtering.Resolver, exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/export/csv",
			Method:  http.MethodGet,
			Handler: ExportCSV(resolver, exporter),
		},
		{
			Path:    "/v1/export/json",
			Method:  http.MethodGet,
			Handler: ExportJSON(resolver, exporter),
		},
		{
			Path:    "/v1/export/xlsx",
			Method:  http.MethodGet,
			Handler: ExportXLSX(resolver, exporter),
		},
	}
}
