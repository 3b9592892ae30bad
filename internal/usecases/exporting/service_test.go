package exporting_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/finsight/financial-insights-api/internal/domain"
	"github.com/finsight/financial-insights-api/internal/usecases/exporting"
	"github.com/finsight/financial-insights-api/internal/usecases/exporting/mocks"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var sampleRecords = []domain.PeriodRecord{
	{Year: 2023, Quarter: 1, SalesVolume: 1000, Profit: 100},
	{Year: 2023, Quarter: 2, SalesVolume: 1500.5, Profit: 0},
	{Year: 2024, Quarter: 1, SalesVolume: 0, Profit: 50},
}

func TestToCSV(t *testing.T) {
	service := exporting.NewService("financial-data")

	tests := []struct {
		name     string
		records  []domain.PeriodRecord
		expected string
	}{
		{
			name: "Registro único",
			records: []domain.PeriodRecord{
				{Year: 2023, Quarter: 1, SalesVolume: 1000, Profit: 100},
			},
			expected: "Year,Quarter,Sales Volume,Profit,Profit Margin\n" +
				"2023,Q1,1000,100,10.00%\n",
		},
		{
			name:    "Valores fracionários e divisão por zero",
			records: sampleRecords,
			expected: "Year,Quarter,Sales Volume,Profit,Profit Margin\n" +
				"2023,Q1,1000,100,10.00%\n" +
				"2023,Q2,1500.5,0,0.00%\n" +
				"2024,Q1,0,50,0.00%\n",
		},
		{
			name:     "Sequência vazia produz somente o cabeçalho",
			records:  []domain.PeriodRecord{},
			expected: "Year,Quarter,Sales Volume,Profit,Profit Margin\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(service.ToCSV(tt.records)))
		})
	}
}

func TestToJSON(t *testing.T) {
	service := exporting.NewService("financial-data")

	content, err := service.ToJSON(sampleRecords)
	require.NoError(t, err)

	var decoded []domain.PeriodRecord
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, sampleRecords, decoded)

	// Array identado com dois espaços
	assert.Contains(t, string(content), "[\n  {")
	assert.Contains(t, string(content), "\"year\": 2023")
}

func TestToXLSX(t *testing.T) {
	service := exporting.NewService("financial-data")

	content, err := service.ToXLSX(sampleRecords)
	require.NoError(t, err)

	// Arquivos xlsx são pacotes zip (assinatura PK)
	require.Greater(t, len(content), 4)
	assert.Equal(t, []byte{'P', 'K'}, content[:2])
}

func TestExportDeliversWithFilenameAndContentType(t *testing.T) {
	ctrl := gomock.NewController(t)

	records := []domain.PeriodRecord{
		{Year: 2023, Quarter: 1, SalesVolume: 1000, Profit: 100},
	}
	service := exporting.NewService("financial-data")

	deliverer := mocks.NewMockDeliverer(ctrl)
	deliverer.EXPECT().Deliver(gomock.Any(), "financial-data.csv", exporting.ContentTypeCSV)
	deliverer.EXPECT().Deliver(gomock.Any(), "financial-data.json", exporting.ContentTypeJSON)
	deliverer.EXPECT().Deliver(gomock.Any(), "financial-data.xlsx", exporting.ContentTypeXLSX)

	assert.NoError(t, service.ExportCSV(records, deliverer))
	assert.NoError(t, service.ExportJSON(records, deliverer))
	assert.NoError(t, service.ExportXLSX(records, deliverer))
}

func TestExportEmptySequenceNeverDelivers(t *testing.T) {
	ctrl := gomock.NewController(t)

	service := exporting.NewService("financial-data")

	// Nenhuma chamada a Deliver é esperada
	deliverer := mocks.NewMockDeliverer(ctrl)

	assert.NoError(t, service.ExportCSV(nil, deliverer))
	assert.NoError(t, service.ExportJSON(nil, deliverer))
	assert.NoError(t, service.ExportXLSX(nil, deliverer))
}
