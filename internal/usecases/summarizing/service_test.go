package summarizing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finsight/financial-insights-api/internal/domain"
)

func TestCompute(t *testing.T) {
	service := NewService()

	tests := []struct {
		name     string
		records  []domain.PeriodRecord
		expected domain.DerivedMetrics
	}{
		{
			name:    "Sequência vazia produz métricas zeradas com direção negativa",
			records: []domain.PeriodRecord{},
			expected: domain.DerivedMetrics{
				TotalSales:      0,
				TotalProfit:     0,
				AvgProfitMargin: 0,
				GrowthRate:      0,
				GrowthDirection: domain.GrowthNegative,
			},
		},
		{
			name: "Sequência de quatro trimestres",
			records: []domain.PeriodRecord{
				{SalesVolume: 1000, Profit: 100},
				{SalesVolume: 2000, Profit: 50},
				{SalesVolume: 1800, Profit: 120},
				{SalesVolume: 2200, Profit: 180},
			},
			expected: domain.DerivedMetrics{
				TotalSales:      7000,
				TotalProfit:     450,
				AvgProfitMargin: 6.43,
				GrowthRate:      80,
				GrowthDirection: domain.GrowthPositive,
			},
		},
		{
			name: "Queda de lucro produz direção negativa com taxa absoluta",
			records: []domain.PeriodRecord{
				{SalesVolume: 1000, Profit: 200},
				{SalesVolume: 1000, Profit: 100},
			},
			expected: domain.DerivedMetrics{
				TotalSales:      2000,
				TotalProfit:     300,
				AvgProfitMargin: 15,
				GrowthRate:      50,
				GrowthDirection: domain.GrowthNegative,
			},
		},
		{
			name: "Vendas zeradas com lucro não zero caem para margem 0",
			records: []domain.PeriodRecord{
				{SalesVolume: 0, Profit: 100},
				{SalesVolume: 0, Profit: 150},
			},
			expected: domain.DerivedMetrics{
				TotalSales:      0,
				TotalProfit:     250,
				AvgProfitMargin: 0,
				GrowthRate:      50,
				GrowthDirection: domain.GrowthPositive,
			},
		},
		{
			name: "Lucro inicial zero cai para crescimento 0",
			records: []domain.PeriodRecord{
				{SalesVolume: 1000, Profit: 0},
				{SalesVolume: 1000, Profit: 100},
			},
			expected: domain.DerivedMetrics{
				TotalSales:      2000,
				TotalProfit:     100,
				AvgProfitMargin: 5,
				GrowthRate:      0,
				GrowthDirection: domain.GrowthNegative,
			},
		},
		{
			name: "Comparação de crescimento é posicional, não cronológica",
			records: []domain.PeriodRecord{
				{Year: 2024, Quarter: 1, SalesVolume: 1000, Profit: 100},
				{Year: 2023, Quarter: 4, SalesVolume: 1000, Profit: 300},
			},
			expected: domain.DerivedMetrics{
				TotalSales:      2000,
				TotalProfit:     400,
				AvgProfitMargin: 20,
				GrowthRate:      200,
				GrowthDirection: domain.GrowthPositive,
			},
		},
		{
			name: "Registro único compara consigo mesmo",
			records: []domain.PeriodRecord{
				{SalesVolume: 1000, Profit: 100},
			},
			expected: domain.DerivedMetrics{
				TotalSales:      1000,
				TotalProfit:     100,
				AvgProfitMargin: 10,
				GrowthRate:      0,
				GrowthDirection: domain.GrowthNegative,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Compute(tt.records))
		})
	}
}

func TestComputeNeverProducesNonFiniteValues(t *testing.T) {
	service := NewService()

	// Todos os denominadores zerados ao mesmo tempo
	metrics := service.Compute([]domain.PeriodRecord{
		{SalesVolume: 0, Profit: 0},
		{SalesVolume: 0, Profit: 0},
	})

	assert.Equal(t, 0.0, metrics.AvgProfitMargin)
	assert.Equal(t, 0.0, metrics.GrowthRate)
	assert.Equal(t, domain.GrowthNegative, metrics.GrowthDirection)
}
