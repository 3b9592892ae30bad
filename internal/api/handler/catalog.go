package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/finsight/financial-insights-api/internal/usecases/filtering"
	"github.com/finsight/financial-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ListCategories(service filtering.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		categories := service.Categories()
		logger.WithField("count", len(categories)).Debug("catalog: listing categories")

		writeJSON(w, logger, map[string]any{"categories": categories})
	})
}

func ListCompanies(service filtering.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		category := httprouter.ParamsFromContext(r.Context()).ByName("category")
		companies := service.Companies(category)

		logger.WithFields(log.Fields{
			"category": category,
			"count":    len(companies),
		}).Debug("catalog: listing companies")

		// Categoria desconhecida responde lista vazia, não erro
		if companies == nil {
			companies = []string{}
		}

		writeJSON(w, logger, map[string]any{"companies": companies})
	})
}

func ListYears(service filtering.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		params := httprouter.ParamsFromContext(r.Context())
		category := params.ByName("category")
		company := params.ByName("company")

		years := service.Years(category, company)
		if years == nil {
			years = []int{}
		}

		logger.WithFields(log.Fields{
			"category": category,
			"company":  company,
			"count":    len(years),
		}).Debug("catalog: listing years")

		writeJSON(w, logger, map[string]any{"years": years})
	})
}

// writeJSON serializa a resposta e registra falhas de encoding
func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("handler: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
