package handler

import (
	"fmt"
	"net/http"

	"github.com/finsight/financial-insights-api/internal/domain"
	"github.com/finsight/financial-insights-api/internal/usecases/exporting"
	"github.com/finsight/financial-insights-api/internal/usecases/filtering"
	"github.com/finsight/financial-insights-api/pkg/apiErrors"
	"github.com/finsight/financial-insights-api/pkg/log"
)

// httpDeliverer entrega o arquivo exportado na resposta HTTP como
// attachment. A entrega é fire-and-forget: falhas de escrita são apenas
// registradas.
type httpDeliverer struct {
	w      http.ResponseWriter
	logger log.Logger
}

func (d httpDeliverer) Deliver(content []byte, filename, contentType string) {
	d.w.Header().Set("Content-Type", contentType)
	d.w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := d.w.Write(content); err != nil {
		d.logger.WithFields(log.Fields{
			"filename": filename,
			"error":    err.Error(),
		}).Warn("export: failed to write download to response")
	}
}

func ExportCSV(resolver filtering.Resolver, exporter exporting.Exporter) http.Handler {
	return exportHandler("csv", resolver, exporter.ExportCSV)
}

func ExportJSON(resolver filtering.Resolver, exporter exporting.Exporter) http.Handler {
	return exportHandler("json", resolver, exporter.ExportJSON)
}

func ExportXLSX(resolver filtering.Resolver, exporter exporting.Exporter) http.Handler {
	return exportHandler("xlsx", resolver, exporter.ExportXLSX)
}

// exportHandler resolve a seleção e dispara a exportação. Seleção sem
// dados responde 204 sem corpo: nenhum arquivo parcial é gerado.
func exportHandler(
	exportFormat string,
	resolver filtering.Resolver,
	export func([]domain.PeriodRecord, exporting.Deliverer) error,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		sel := selectionFromQuery(r)
		records := resolver.Resolve(sel.Category, sel.Company, sel.Year)

		logger.WithFields(log.Fields{
			"format":   exportFormat,
			"category": sel.Category,
			"company":  sel.Company,
			"year":     sel.Year,
			"records":  len(records),
		}).Info("export: export requested")

		if len(records) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if err := export(records, httpDeliverer{w: w, logger: logger}); err != nil {
			logger.WithFields(log.Fields{
				"format": exportFormat,
				"error":  err.Error(),
			}).Error("export: failed to serialize records")

			apiErrors.WriteError(w, apiErrors.ErrExportFailure, err.Error(), nil)
		}
	})
}
