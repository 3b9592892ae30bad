package domain

// PeriodRecord representa os números de um trimestre (volume de vendas e
// lucro) de uma empresa em um determinado ano. Imutável depois de produzido
// pelo resolvedor de filtros.
type PeriodRecord struct {
	Year        int     `json:"year"`
	Quarter     int     `json:"quarter"`
	SalesVolume float64 `json:"sales_volume"`
	Profit      float64 `json:"profit"`
}

// ProfitMargin calcula a margem de lucro do período em percentual.
// Quando o volume de vendas é zero a margem é definida como 0, nunca
// um valor não finito.
func (r PeriodRecord) ProfitMargin() float64 {
	if r.SalesVolume == 0 {
		return 0
	}
	return r.Profit / r.SalesVolume * 100
}
