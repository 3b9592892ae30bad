package handler

import (
	"net/http"
	"strconv"

	"github.com/finsight/financial-insights-api/internal/domain"
	"github.com/finsight/financial-insights-api/internal/usecases/dashboard"
	"github.com/finsight/financial-insights-api/pkg/apiErrors"
	"github.com/finsight/financial-insights-api/pkg/log"
)

// selectionFromQuery mapeia os parâmetros de consulta para uma Selection.
// Ano ausente equivale a "all".
func selectionFromQuery(r *http.Request) domain.Selection {
	sel := domain.Selection{
		Category: r.URL.Query().Get("category"),
		Company:  r.URL.Query().Get("company"),
		Year:     r.URL.Query().Get("year"),
	}

	if sel.Year == "" {
		sel.Year = domain.AllYears
	}

	return sel
}

func GetDashboard(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sel := selectionFromQuery(r)
		logger.WithFields(log.Fields{
			"category": sel.Category,
			"company":  sel.Company,
			"year":     sel.Year,
		}).Info("dashboard: building view for selection")

		view := service.View(sel)

		if len(view.Records) == 0 {
			logger.WithFields(log.Fields{
				"category": sel.Category,
				"company":  sel.Company,
				"year":     sel.Year,
			}).Info("dashboard: no data for selection, rendering empty view")
		}

		writeJSON(w, logger, view)
	})
}

func GetRecords(service dashboard.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sel := selectionFromQuery(r)

		// Filtro opcional de trimestre da tabela de dados
		quarter := 0
		if rawQuarter := r.URL.Query().Get("quarter"); rawQuarter != "" {
			parsed, err := strconv.Atoi(rawQuarter)
			if err != nil || parsed < 1 || parsed > 4 {
				logger.WithFields(log.Fields{
					"quarter": rawQuarter,
				}).Warn("records: invalid quarter parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "o trimestre deve ser um inteiro entre 1 e 4", nil)
				return
			}
			quarter = parsed
		}

		rows := service.TableRows(sel, quarter)

		logger.WithFields(log.Fields{
			"category": sel.Category,
			"company":  sel.Company,
			"year":     sel.Year,
			"rows":     len(rows),
		}).Info("records: table rows resolved")

		writeJSON(w, logger, map[string]any{"rows": rows})
	})
}
