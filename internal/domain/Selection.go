package domain

import "strconv"

// AllYears é o valor de seleção que representa todos os anos disponíveis.
const AllYears = "all"

// Selection representa o filtro escolhido pelo usuário: categoria, empresa
// e ano ("all" ou um ano específico). É o único estado mutável do dashboard
// e só muda por eventos explícitos de seleção.
type Selection struct {
	Category string `json:"category"`
	Company  string `json:"company"`
	Year     string `json:"year"`
}

// YearValue retorna o ano selecionado como inteiro. O segundo retorno é
// falso quando a seleção é "all" ou o valor não é numérico.
func (s Selection) YearValue() (int, bool) {
	if s.Year == "" || s.Year == AllYears {
		return 0, false
	}

	year, err := strconv.Atoi(s.Year)
	if err != nil {
		return 0, false
	}

	return year, true
}

// SelectionEventType identifica qual controle de filtro disparou o evento
type SelectionEventType string

const (
	CategoryChanged SelectionEventType = "category_changed"
	CompanyChanged  SelectionEventType = "company_changed"
	YearChanged     SelectionEventType = "year_changed"
)

// SelectionEvent é um evento discreto de interação com os controles de
// filtro. Aplicado por um reducer puro (Selection, SelectionEvent) -> Selection.
type SelectionEvent struct {
	Type  SelectionEventType `json:"type"`
	Value string             `json:"value"`
}
