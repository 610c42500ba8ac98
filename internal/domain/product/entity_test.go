package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByCodeExactMatch(t *testing.T) {
	products := []*Product{
		{ID: "1", Name: "Café", SKU: "CAF-01", Barcode: "7891000100103"},
		{ID: "2", Name: "Açúcar", SKU: "ACU-01", Barcode: "7891000200200"},
	}

	p, err := FindByCode(products, "7891000200200")
	require.NoError(t, err)
	assert.Equal(t, "2", p.ID)

	p, err = FindByCode(products, " CAF-01 ")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	_, err = FindByCode(products, "7891000")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Produto não encontrado", err.Error())

	_, err = FindByCode(products, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMatches(t *testing.T) {
	p := &Product{Name: "Café Torrado", SKU: "CAF-01", Barcode: "7891000100103", Description: "Pacote 500g"}

	assert.True(t, p.Matches("torrado"))
	assert.True(t, p.Matches("caf-"))
	assert.True(t, p.Matches("500G"))
	assert.True(t, p.Matches("1001"))
	assert.False(t, p.MatchesPOS("500g"))
	assert.True(t, p.MatchesPOS("1001"))
}

func TestNewProductDefaults(t *testing.T) {
	p, err := NewProduct("Caneta", 2.5)
	require.NoError(t, err)
	assert.Equal(t, DefaultUnit, p.Unit)
	assert.True(t, p.Active)

	_, err = NewProduct(" ", 1)
	assert.ErrorIs(t, err, ErrEmptyName)
}
