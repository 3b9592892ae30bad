package domain

// GrowthDirection indica se o lucro cresceu entre o primeiro e o último
// registro da sequência filtrada
type GrowthDirection string

const (
	GrowthPositive GrowthDirection = "positive"
	GrowthNegative GrowthDirection = "negative"
)

// DerivedMetrics agrega os totais e indicadores derivados da sequência de
// períodos visível. Recalculado do zero a cada mudança de seleção; nunca
// persistido.
type DerivedMetrics struct {
	TotalSales      float64         `json:"total_sales"`
	TotalProfit     float64         `json:"total_profit"`
	AvgProfitMargin float64         `json:"avg_profit_margin"`
	GrowthRate      float64         `json:"growth_rate"`
	GrowthDirection GrowthDirection `json:"growth_direction"`
}
