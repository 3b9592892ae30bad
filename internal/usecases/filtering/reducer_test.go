package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finsight/financial-insights-api/internal/domain"
)

func TestDefaultSelection(t *testing.T) {
	resolver := newTestResolver(t)

	sel := resolver.DefaultSelection()
	assert.Equal(t, domain.Selection{
		Category: "Finance",
		Company:  "BANKO",
		Year:     domain.AllYears,
	}, sel)
}

func TestReduce(t *testing.T) {
	resolver := newTestResolver(t)

	current := domain.Selection{Category: "Technology", Company: "ACME", Year: "2023"}

	tests := []struct {
		name     string
		event    domain.SelectionEvent
		expected domain.Selection
	}{
		{
			name:  "Trocar categoria reposiciona empresa e volta o ano para all",
			event: domain.SelectionEvent{Type: domain.CategoryChanged, Value: "Finance"},
			expected: domain.Selection{
				Category: "Finance",
				Company:  "BANKO",
				Year:     domain.AllYears,
			},
		},
		{
			name:     "Categoria inexistente mantém a seleção",
			event:    domain.SelectionEvent{Type: domain.CategoryChanged, Value: "Energy"},
			expected: current,
		},
		{
			name:  "Trocar empresa volta o ano para all",
			event: domain.SelectionEvent{Type: domain.CompanyChanged, Value: "GLOBEX"},
			expected: domain.Selection{
				Category: "Technology",
				Company:  "GLOBEX",
				Year:     domain.AllYears,
			},
		},
		{
			name:     "Empresa de outra categoria mantém a seleção",
			event:    domain.SelectionEvent{Type: domain.CompanyChanged, Value: "BANKO"},
			expected: current,
		},
		{
			name:  "Trocar para um ano disponível",
			event: domain.SelectionEvent{Type: domain.YearChanged, Value: "2024"},
			expected: domain.Selection{
				Category: "Technology",
				Company:  "ACME",
				Year:     "2024",
			},
		},
		{
			name:  "Trocar para all",
			event: domain.SelectionEvent{Type: domain.YearChanged, Value: domain.AllYears},
			expected: domain.Selection{
				Category: "Technology",
				Company:  "ACME",
				Year:     domain.AllYears,
			},
		},
		{
			name:     "Ano indisponível mantém a seleção",
			event:    domain.SelectionEvent{Type: domain.YearChanged, Value: "1999"},
			expected: current,
		},
		{
			name:     "Ano não numérico mantém a seleção",
			event:    domain.SelectionEvent{Type: domain.YearChanged, Value: "20x4"},
			expected: current,
		},
		{
			name:     "Evento desconhecido mantém a seleção",
			event:    domain.SelectionEvent{Type: "theme_changed", Value: "dark"},
			expected: current,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := current
			next := resolver.Reduce(current, tt.event)

			assert.Equal(t, tt.expected, next)
			assert.Equal(t, before, current, "o reducer não pode mutar a seleção de entrada")
		})
	}
}
