package summarizing

import (
	"math"

	"github.com/finsight/financial-insights-api/internal/domain"
	"github.com/finsight/financial-insights-api/pkg/utils"
)

// Summarizer calcula as métricas derivadas da sequência de períodos visível
type Summarizer interface {
	Compute(records []domain.PeriodRecord) domain.DerivedMetrics
}

type Service struct{}

func NewService() Summarizer {
	return &Service{}
}

// Compute agrega totais, margem média e crescimento do lucro entre o
// primeiro e o último registro da ordem de entrada (comparação posicional,
// não cronológica). Divisões por zero caem para 0: nenhum valor não finito
// sai daqui. Sequência vazia produz métricas zeradas com direção negativa.
func (s *Service) Compute(records []domain.PeriodRecord) domain.DerivedMetrics {
	metrics := domain.DerivedMetrics{GrowthDirection: domain.GrowthNegative}

	if len(records) == 0 {
		return metrics
	}

	for _, record := range records {
		metrics.TotalSales += record.SalesVolume
		metrics.TotalProfit += record.Profit
	}

	if metrics.TotalSales != 0 {
		metrics.AvgProfitMargin = utils.RoundWithTwoDecimalPlace(
			metrics.TotalProfit / metrics.TotalSales * 100,
		)
	}

	first := records[0].Profit
	last := records[len(records)-1].Profit

	if first != 0 {
		delta := (last - first) / first
		metrics.GrowthRate = utils.RoundWithTwoDecimalPlace(math.Abs(delta) * 100)
		if delta > 0 {
			metrics.GrowthDirection = domain.GrowthPositive
		}
	}

	return metrics
}
