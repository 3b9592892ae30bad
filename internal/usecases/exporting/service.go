package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/finsight/financial-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// MIME types dos arquivos exportados
	ContentTypeCSV  = "text/csv;charset=utf-8;"
	ContentTypeJSON = "application/json;charset=utf-8;"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	xlsxSheetName = "Financials"
)

// csvHeader é o cabeçalho fixo do export CSV
var csvHeader = []string{"Year", "Quarter", "Sales Volume", "Profit", "Profit Margin"}

type Service struct {
	baseFilename string
}

// NewService cria o exportador. baseFilename é o nome base dos arquivos
// gerados (ex.: "financial-data" -> financial-data.csv).
func NewService(baseFilename string) Exporter {
	return &Service{baseFilename: baseFilename}
}

// ToCSV produz uma linha por registro na ordem de entrada, com o trimestre
// no formato Q<n> e a margem por linha com duas casas decimais. Volume de
// vendas zerado produz margem "0.00%", nunca um valor não finito.
func (s *Service) ToCSV(records []domain.PeriodRecord) []byte {
	buffer := &bytes.Buffer{}
	writer := csv.NewWriter(buffer)

	_ = writer.Write(csvHeader)
	for _, record := range records {
		_ = writer.Write([]string{
			strconv.Itoa(record.Year),
			fmt.Sprintf("Q%d", record.Quarter),
			formatNumber(record.SalesVolume),
			formatNumber(record.Profit),
			fmt.Sprintf("%.2f%%", record.ProfitMargin()),
		})
	}
	writer.Flush()

	return buffer.Bytes()
}

// ToJSON produz um array identado com dois espaços, com os registros
// exatamente como recebidos (incluindo o campo year)
func (s *Service) ToJSON(records []domain.PeriodRecord) ([]byte, error) {
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar registros para JSON")
	}

	return content, nil
}

// ToXLSX produz uma planilha com as mesmas colunas do CSV
func (s *Service) ToXLSX(records []domain.PeriodRecord) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", xlsxSheetName); err != nil {
		return nil, errors.Wrap(err, "erro ao nomear a planilha")
	}

	header := make([]interface{}, len(csvHeader))
	for i, column := range csvHeader {
		header[i] = column
	}
	if err := file.SetSheetRow(xlsxSheetName, "A1", &header); err != nil {
		return nil, errors.Wrap(err, "erro ao escrever o cabeçalho da planilha")
	}

	for i, record := range records {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			record.Year,
			fmt.Sprintf("Q%d", record.Quarter),
			record.SalesVolume,
			record.Profit,
			fmt.Sprintf("%.2f%%", record.ProfitMargin()),
		}
		if err := file.SetSheetRow(xlsxSheetName, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "erro ao escrever a linha %d da planilha", i+2)
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar a planilha")
	}

	return buffer.Bytes(), nil
}

func (s *Service) ExportCSV(records []domain.PeriodRecord, deliverer Deliverer) error {
	if len(records) == 0 {
		return nil
	}

	deliverer.Deliver(s.ToCSV(records), s.baseFilename+".csv", ContentTypeCSV)
	return nil
}

func (s *Service) ExportJSON(records []domain.PeriodRecord, deliverer Deliverer) error {
	if len(records) == 0 {
		return nil
	}

	content, err := s.ToJSON(records)
	if err != nil {
		return err
	}

	deliverer.Deliver(content, s.baseFilename+".json", ContentTypeJSON)
	return nil
}

func (s *Service) ExportXLSX(records []domain.PeriodRecord, deliverer Deliverer) error {
	if len(records) == 0 {
		return nil
	}

	content, err := s.ToXLSX(records)
	if err != nil {
		return err
	}

	deliverer.Deliver(content, s.baseFilename+".xlsx", ContentTypeXLSX)
	return nil
}

// formatNumber formata valores sem casas decimais desnecessárias
// (1000.0 -> "1000", 1000.5 -> "1000.5")
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
