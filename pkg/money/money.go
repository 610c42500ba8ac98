// Package money concentra a aritmética e a formatação de valores monetários.
//
// Os valores trafegam como float64, mas toda soma passa por decimal para que
// o total persistido seja a soma literal de quantidade*preço.
package money

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "R$"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// LineTotal retorna quantidade * preço
func LineTotal(quantity, price float64) float64 {
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(price)).InexactFloat64()
}

// SumBy soma quantidade*preço de cada item
func SumBy[T any](items []T, line func(T) (quantity, price float64)) float64 {
	total := decimal.Zero
	for _, it := range items {
		q, p := line(it)
		total = total.Add(decimal.NewFromFloat(q).Mul(decimal.NewFromFloat(p)))
	}
	return total.InexactFloat64()
}

// Add soma valores avulsos
func Add(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.InexactFloat64()
}

// Sub retorna a - b
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}

// Round2 arredonda para duas casas decimais (meio para longe do zero)
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatBRL formata o valor em reais, ex.: "R$ 1.234,56"
func FormatBRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	rounded := Round2(v)
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + currencySymbol + " " + printer.Sprintf("%.2f", rounded)
}

// ParseBRL converte uma string no formato de FormatBRL de volta para número.
// Entradas inválidas resultam em 0.
func ParseBRL(s string) float64 {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, currencySymbol)
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0', '\u202f', '.':
			return -1
		case ',':
			return '.'
		}
		return r
	}, s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if negative {
		d = d.Neg()
	}
	return d.InexactFloat64()
}
