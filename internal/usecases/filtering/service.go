package filtering

import (
	"strconv"

	"github.com/finsight/financial-insights-api/infrastructure/dataset"
	"github.com/finsight/financial-insights-api/internal/domain"
)

// Resolver define a interface do resolvedor de filtros: transforma a
// seleção (categoria, empresa, ano) na sequência plana de registros de
// período visível no dashboard.
type Resolver interface {
	// Categories retorna as categorias disponíveis no dataset
	Categories() []string

	// Companies retorna as empresas de uma categoria
	Companies(category string) []string

	// Years retorna os anos disponíveis para uma empresa, em ordem crescente
	Years(category, company string) []int

	// Resolve retorna os registros da seleção. Chaves desconhecidas
	// resultam em sequência vazia, nunca em erro.
	Resolve(category, company, year string) []domain.PeriodRecord

	// FilterQuarter restringe uma sequência a um trimestre específico.
	// Um trimestre fora de 1..4 devolve a sequência sem alteração.
	FilterQuarter(records []domain.PeriodRecord, quarter int) []domain.PeriodRecord

	// DefaultSelection retorna a seleção inicial do dashboard
	DefaultSelection() domain.Selection

	// Reduce aplica um evento de seleção e retorna a nova seleção
	Reduce(sel domain.Selection, event domain.SelectionEvent) domain.Selection
}

type Service struct {
	store dataset.Store
}

// NewService cria o resolvedor de filtros sobre o dataset carregado
func NewService(store dataset.Store) Resolver {
	return &Service{store: store}
}

func (s *Service) Categories() []string {
	return s.store.Categories()
}

func (s *Service) Companies(category string) []string {
	return s.store.Companies(category)
}

func (s *Service) Years(category, company string) []int {
	return s.store.Years(category, company)
}

// Resolve é uma função pura dos três argumentos mais o dataset estático.
// Para year == "all" (ou vazio) concatena todos os anos da empresa em
// ordem cronológica crescente; cada registro carrega o ano de origem.
func (s *Service) Resolve(category, company, year string) []domain.PeriodRecord {
	records := make([]domain.PeriodRecord, 0)

	if year == "" || year == domain.AllYears {
		for _, y := range s.store.Years(category, company) {
			records = append(records, s.store.Records(category, company, y)...)
		}
		return records
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		// Ano não numérico é tratado como chave ausente
		return records
	}

	return append(records, s.store.Records(category, company, y)...)
}

func (s *Service) FilterQuarter(records []domain.PeriodRecord, quarter int) []domain.PeriodRecord {
	if quarter < 1 || quarter > 4 {
		return records
	}

	filtered := make([]domain.PeriodRecord, 0, len(records))
	for _, record := range records {
		if record.Quarter == quarter {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
