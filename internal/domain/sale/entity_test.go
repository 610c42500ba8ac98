package sale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaleTotal(t *testing.T) {
	items := []Item{{ProductID: "a", Quantity: 2, Price: 10.50}, {ProductID: "b", Quantity: 1, Price: 5}}

	s, err := NewSale("cli-1", items, PaymentPix, 0)
	require.NoError(t, err)

	assert.Equal(t, 26.0, s.Total)
	assert.Equal(t, StatusCompleted, s.Status)
	assert.Equal(t, 1, s.Installments)
	assert.Equal(t, items, s.Items)

	items[0].Quantity = 99
	assert.Equal(t, 2.0, s.Items[0].Quantity)
}

func TestNewSaleInstallments(t *testing.T) {
	items := []Item{{ProductID: "a", Quantity: 1, Price: 100}}

	s, err := NewSale("c", items, PaymentCreditCard, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Installments)
	assert.Equal(t, 100.0, s.Total)

	s, err = NewSale("c", items, PaymentCash, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Installments)

	_, err = NewSale("c", items, PaymentCreditCard, 13)
	assert.ErrorIs(t, err, ErrInvalidInstallments)
}

func TestNewSaleRejectsInvalidInput(t *testing.T) {
	items := []Item{{ProductID: "a", Quantity: 1, Price: 1}}

	_, err := NewSale("", items, PaymentPix, 1)
	assert.ErrorIs(t, err, ErrEmptyClient)

	_, err = NewSale("c", nil, PaymentPix, 1)
	assert.ErrorIs(t, err, ErrEmptyItems)

	_, err = NewSale("c", items, PaymentMethod("boleto"), 1)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}
