package domain

// MetricCards contém os valores dos cartões de resumo já formatados para
// exibição (moeda, agrupamento de milhares, percentuais).
type MetricCards struct {
	TotalSales      string          `json:"total_sales"`
	TotalProfit     string          `json:"total_profit"`
	AvgProfitMargin string          `json:"avg_profit_margin"`
	GrowthRate      string          `json:"growth_rate"`
	GrowthDirection GrowthDirection `json:"growth_direction"`
}

// ChartPoint é um ponto de uma série de gráfico, rotulado por período
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries é uma série nomeada consumida pelo par de gráficos do dashboard
type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// TableRow é uma linha da tabela de dados, com valores formatados e a
// margem de lucro por período calculada linha a linha.
type TableRow struct {
	Year         int    `json:"year"`
	Quarter      string `json:"quarter"`
	SalesVolume  string `json:"sales_volume"`
	Profit       string `json:"profit"`
	ProfitMargin string `json:"profit_margin"`
}

// DashboardView é a resposta completa do dashboard para uma seleção:
// registros filtrados, métricas derivadas (brutas e formatadas) e o par de
// séries de gráficos.
type DashboardView struct {
	Selection Selection      `json:"selection"`
	Records   []PeriodRecord `json:"records"`
	Metrics   DerivedMetrics `json:"metrics"`
	Cards     MetricCards    `json:"cards"`
	Charts    []ChartSeries  `json:"charts"`
}
