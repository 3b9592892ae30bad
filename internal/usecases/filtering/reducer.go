package filtering

import (
	"slices"

	"github.com/finsight/financial-insights-api/internal/domain"
)

// DefaultSelection retorna a primeira categoria e a primeira empresa do
// dataset, com todos os anos visíveis
func (s *Service) DefaultSelection() domain.Selection {
	sel := domain.Selection{Year: domain.AllYears}

	categories := s.store.Categories()
	if len(categories) == 0 {
		return sel
	}
	sel.Category = categories[0]

	companies := s.store.Companies(sel.Category)
	if len(companies) > 0 {
		sel.Company = companies[0]
	}

	return sel
}

// Reduce é o reducer puro de seleção: (estado, evento) -> estado. Trocar a
// categoria reposiciona a empresa na primeira disponível; trocar a empresa
// volta o ano para "all". Alvos inexistentes deixam a seleção como está.
func (s *Service) Reduce(sel domain.Selection, event domain.SelectionEvent) domain.Selection {
	switch event.Type {
	case domain.CategoryChanged:
		if !slices.Contains(s.store.Categories(), event.Value) {
			return sel
		}

		next := domain.Selection{Category: event.Value, Year: domain.AllYears}
		if companies := s.store.Companies(event.Value); len(companies) > 0 {
			next.Company = companies[0]
		}
		return next

	case domain.CompanyChanged:
		if !slices.Contains(s.store.Companies(sel.Category), event.Value) {
			return sel
		}
		return domain.Selection{Category: sel.Category, Company: event.Value, Year: domain.AllYears}

	case domain.YearChanged:
		if event.Value == domain.AllYears {
			return domain.Selection{Category: sel.Category, Company: sel.Company, Year: domain.AllYears}
		}

		next := domain.Selection{Category: sel.Category, Company: sel.Company, Year: event.Value}
		year, ok := next.YearValue()
		if !ok || !slices.Contains(s.store.Years(sel.Category, sel.Company), year) {
			return sel
		}
		return next
	}

	return sel
}
