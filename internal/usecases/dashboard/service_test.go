package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsight/financial-insights-api/infrastructure/dataset"
	"github.com/finsight/financial-insights-api/internal/domain"
	"github.com/finsight/financial-insights-api/internal/usecases/dashboard"
	"github.com/finsight/financial-insights-api/internal/usecases/filtering"
	"github.com/finsight/financial-insights-api/internal/usecases/summarizing"
	"github.com/finsight/financial-insights-api/pkg/format"
)

const fixtureJSON = `{
	"Technology": {
		"ACME": {
			"2023": [
				{"quarter": 1, "sales_volume": 1000, "profit": 100},
				{"quarter": 2, "sales_volume": 2000, "profit": 50},
				{"quarter": 3, "sales_volume": 1800, "profit": 120},
				{"quarter": 4, "sales_volume": 2200, "profit": 180}
			]
		}
	}
}`

func newTestDashboarder(t *testing.T) dashboard.Dashboarder {
	t.Helper()

	store, err := dataset.FromBytes([]byte(fixtureJSON))
	require.NoError(t, err)

	formatter, err := format.New("en-US", "USD")
	require.NoError(t, err)

	return dashboard.NewService(filtering.NewService(store), summarizing.NewService(), formatter)
}

func TestView(t *testing.T) {
	service := newTestDashboarder(t)

	sel := domain.Selection{Category: "Technology", Company: "ACME", Year: "2023"}
	view := service.View(sel)

	assert.Equal(t, sel, view.Selection)
	assert.Len(t, view.Records, 4)

	assert.Equal(t, domain.MetricCards{
		TotalSales:      "$7,000",
		TotalProfit:     "$450",
		AvgProfitMargin: "6.43%",
		GrowthRate:      "80.00%",
		GrowthDirection: domain.GrowthPositive,
	}, view.Cards)

	require.Len(t, view.Charts, 2)
	assert.Equal(t, "Sales Volume", view.Charts[0].Name)
	assert.Equal(t, "Profit", view.Charts[1].Name)
	require.Len(t, view.Charts[0].Points, 4)
	assert.Equal(t, domain.ChartPoint{Label: "2023 Q1", Value: 1000}, view.Charts[0].Points[0])
	assert.Equal(t, domain.ChartPoint{Label: "2023 Q4", Value: 180}, view.Charts[1].Points[3])
}

func TestViewWithoutDataIsRenderable(t *testing.T) {
	service := newTestDashboarder(t)

	view := service.View(domain.Selection{Category: "Energy", Company: "ACME", Year: "2023"})

	assert.Empty(t, view.Records)
	assert.Equal(t, domain.MetricCards{
		TotalSales:      "$0",
		TotalProfit:     "$0",
		AvgProfitMargin: "0.00%",
		GrowthRate:      "0.00%",
		GrowthDirection: domain.GrowthNegative,
	}, view.Cards)

	require.Len(t, view.Charts, 2)
	assert.Empty(t, view.Charts[0].Points)
	assert.Empty(t, view.Charts[1].Points)
}

func TestTableRows(t *testing.T) {
	service := newTestDashboarder(t)
	sel := domain.Selection{Category: "Technology", Company: "ACME", Year: "2023"}

	tests := []struct {
		name     string
		quarter  int
		expected []domain.TableRow
	}{
		{
			name:    "Sem filtro de trimestre",
			quarter: 0,
			expected: []domain.TableRow{
				{Year: 2023, Quarter: "Q1", SalesVolume: "1,000", Profit: "$100", ProfitMargin: "10.00%"},
				{Year: 2023, Quarter: "Q2", SalesVolume: "2,000", Profit: "$50", ProfitMargin: "2.50%"},
				{Year: 2023, Quarter: "Q3", SalesVolume: "1,800", Profit: "$120", ProfitMargin: "6.67%"},
				{Year: 2023, Quarter: "Q4", SalesVolume: "2,200", Profit: "$180", ProfitMargin: "8.18%"},
			},
		},
		{
			name:    "Filtrado por trimestre",
			quarter: 2,
			expected: []domain.TableRow{
				{Year: 2023, Quarter: "Q2", SalesVolume: "2,000", Profit: "$50", ProfitMargin: "2.50%"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.TableRows(sel, tt.quarter))
		})
	}
}
