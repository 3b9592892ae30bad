package exporting

import "github.com/finsight/financial-insights-api/internal/domain"

// Deliverer entrega o conteúdo gerado ao usuário com nome de arquivo e
// MIME type. A entrega é fire-and-forget: falhas são registradas por quem
// implementa, nunca devolvidas ao chamador.
type Deliverer interface {
	Deliver(content []byte, filename, contentType string)
}

// Exporter serializa a sequência filtrada de períodos para download.
// Exportar uma sequência vazia é um no-op: nenhuma entrega acontece.
type Exporter interface {
	// ToCSV serializa os registros em CSV na ordem de entrada
	ToCSV(records []domain.PeriodRecord) []byte

	// ToJSON serializa os registros em um array JSON identado
	ToJSON(records []domain.PeriodRecord) ([]byte, error)

	// ToXLSX serializa os registros em uma planilha Excel
	ToXLSX(records []domain.PeriodRecord) ([]byte, error)

	ExportCSV(records []domain.PeriodRecord, deliverer Deliverer) error
	ExportJSON(records []domain.PeriodRecord, deliverer Deliverer) error
	ExportXLSX(records []domain.PeriodRecord, deliverer Deliverer) error
}
