package format

import (
	"github.com/pkg/errors"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// narrowSymbols mapeia códigos ISO para o símbolo curto usado nos cartões
// de métricas. Códigos fora do mapa caem para o próprio código ISO.
var narrowSymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"BRL": "R$",
	"JPY": "¥",
}

// Formatter formata valores monetários e inteiros agrupados de acordo com
// o locale configurado. Funções totais: entrada nula é tratada como zero.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New cria um Formatter para o locale (BCP 47) e o código de moeda ISO 4217
// configurados
func New(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Wrapf(err, "locale inválido: %q", locale)
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, errors.Wrapf(err, "código de moeda inválido: %q", currencyCode)
	}

	symbol, ok := narrowSymbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}

	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// Money formata um valor como moeda, sem casas decimais
// (1234567 -> "$1,234,567")
func (f *Formatter) Money(value *float64) string {
	return f.symbol + f.Grouped(value)
}

// Grouped formata um valor como inteiro com separadores de milhar do
// locale, sem casas decimais
func (f *Formatter) Grouped(value *float64) string {
	v := 0.0
	if value != nil {
		v = *value
	}

	return f.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0)))
}

// Percent formata um percentual já calculado com duas casas decimais
// ("6.43" -> "6.43%")
func (f *Formatter) Percent(value *float64) string {
	v := 0.0
	if value != nil {
		v = *value
	}

	return f.printer.Sprintf("%v%%", number.Decimal(v, number.MaxFractionDigits(2), number.MinFractionDigits(2)))
}
