package dashboard

import (
	"fmt"

	"github.com/finsight/financial-insights-api/internal/domain"
	"github.com/finsight/financial-insights-api/internal/usecases/filtering"
	"github.com/finsight/financial-insights-api/internal/usecases/summarizing"
	"github.com/finsight/financial-insights-api/pkg/format"
)

// Nomes das séries do par de gráficos do dashboard
const (
	salesSeriesName  = "Sales Volume"
	profitSeriesName = "Profit"
)

// Dashboarder monta as visões consumidas pelos componentes de apresentação
// (cartões de métricas, par de gráficos e tabela de dados) a partir de uma
// seleção.
type Dashboarder interface {
	View(sel domain.Selection) *domain.DashboardView
	TableRows(sel domain.Selection, quarter int) []domain.TableRow
}

type Service struct {
	resolver   filtering.Resolver
	summarizer summarizing.Summarizer
	formatter  *format.Formatter
}

func NewService(
	resolver filtering.Resolver,
	summarizer summarizing.Summarizer,
	formatter *format.Formatter,
) Dashboarder {
	return &Service{
		resolver:   resolver,
		summarizer: summarizer,
		formatter:  formatter,
	}
}

// View resolve a seleção e calcula tudo que o dashboard exibe. Seleções
// sem dados produzem uma visão vazia renderizável (cartões zerados,
// gráficos e tabela vazios), nunca um erro.
func (s *Service) View(sel domain.Selection) *domain.DashboardView {
	records := s.resolver.Resolve(sel.Category, sel.Company, sel.Year)
	metrics := s.summarizer.Compute(records)

	return &domain.DashboardView{
		Selection: sel,
		Records:   records,
		Metrics:   metrics,
		Cards:     s.cards(metrics),
		Charts:    chartPair(records),
	}
}

// TableRows monta as linhas da tabela de dados, com filtro opcional de
// trimestre (0 desativa o filtro)
func (s *Service) TableRows(sel domain.Selection, quarter int) []domain.TableRow {
	records := s.resolver.Resolve(sel.Category, sel.Company, sel.Year)
	records = s.resolver.FilterQuarter(records, quarter)

	rows := make([]domain.TableRow, 0, len(records))
	for _, record := range records {
		margin := record.ProfitMargin()
		rows = append(rows, domain.TableRow{
			Year:         record.Year,
			Quarter:      fmt.Sprintf("Q%d", record.Quarter),
			SalesVolume:  s.formatter.Grouped(&record.SalesVolume),
			Profit:       s.formatter.Money(&record.Profit),
			ProfitMargin: s.formatter.Percent(&margin),
		})
	}

	return rows
}

func (s *Service) cards(metrics domain.DerivedMetrics) domain.MetricCards {
	return domain.MetricCards{
		TotalSales:      s.formatter.Money(&metrics.TotalSales),
		TotalProfit:     s.formatter.Money(&metrics.TotalProfit),
		AvgProfitMargin: s.formatter.Percent(&metrics.AvgProfitMargin),
		GrowthRate:      s.formatter.Percent(&metrics.GrowthRate),
		GrowthDirection: metrics.GrowthDirection,
	}
}

// chartPair produz as duas séries (volume de vendas e lucro) na ordem dos
// registros, rotuladas por "<ano> Q<trimestre>"
func chartPair(records []domain.PeriodRecord) []domain.ChartSeries {
	sales := domain.ChartSeries{Name: salesSeriesName, Points: make([]domain.ChartPoint, 0, len(records))}
	profit := domain.ChartSeries{Name: profitSeriesName, Points: make([]domain.ChartPoint, 0, len(records))}

	for _, record := range records {
		label := fmt.Sprintf("%d Q%d", record.Year, record.Quarter)
		sales.Points = append(sales.Points, domain.ChartPoint{Label: label, Value: record.SalesVolume})
		profit.Points = append(profit.Points, domain.ChartPoint{Label: label, Value: record.Profit})
	}

	return []domain.ChartSeries{sales, profit}
}
