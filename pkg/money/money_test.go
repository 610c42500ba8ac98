package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type line struct {
	qty   float64
	price float64
}

func TestSumByIsLiteralSum(t *testing.T) {
	items := []line{{qty: 2, price: 10.50}, {qty: 1, price: 5}}

	total := SumBy(items, func(l line) (float64, float64) { return l.qty, l.price })

	assert.Equal(t, 26.0, total)
}

func TestSumByAvoidsFloatDrift(t *testing.T) {
	items := []line{{qty: 3, price: 0.1}, {qty: 1, price: 0.2}}

	total := SumBy(items, func(l line) (float64, float64) { return l.qty, l.price })

	assert.Equal(t, 0.5, total)
}

func TestSumByEmpty(t *testing.T) {
	assert.Equal(t, 0.0, SumBy([]line{}, func(l line) (float64, float64) { return l.qty, l.price }))
}

func TestAddAndSub(t *testing.T) {
	assert.Equal(t, 0.3, Add(0.1, 0.2))
	assert.Equal(t, 0.1, Sub(0.3, 0.2))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatBRL(1234.56))
	assert.Equal(t, "R$ 0,00", FormatBRL(0))
	assert.Equal(t, "-R$ 10,50", FormatBRL(-10.5))
}

func TestParseBRLInvalid(t *testing.T) {
	assert.Equal(t, 0.0, ParseBRL("abc"))
	assert.Equal(t, 0.0, ParseBRL(""))
}

func TestFormatParseRoundTrip(t *testing.T) {
	values := []float64{0, 0.01, 1, 9.99, 10.5, 26, 1234.56, 999999.99, 1234567.89, -42.1}

	for _, v := range values {
		got := ParseBRL(FormatBRL(v))
		assert.InDelta(t, v, got, 1e-9, "valor %v", v)
	}
}

func TestRoundTripRoundsToCents(t *testing.T) {
	assert.InDelta(t, 10.13, ParseBRL(FormatBRL(10.125)), 1e-9)
}
