package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c, err := NewClient("  Maria  ", "")
	require.NoError(t, err)
	assert.Equal(t, "Maria", c.Name)
	assert.Equal(t, TypeIndividual, c.Type)
	assert.NotEmpty(t, c.ID)

	_, err = NewClient("", TypeBusiness)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewClient("X", Type("outro"))
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestMatches(t *testing.T) {
	c := &Client{Name: "Padaria Central", Document: "12.345.678/0001-90"}

	assert.True(t, c.Matches("central"))
	assert.True(t, c.Matches("678/0001"))
	assert.False(t, c.Matches("mercado"))
}

func TestNameOf(t *testing.T) {
	idx := map[string]*Client{"1": {ID: "1", Name: "Ana"}}

	assert.Equal(t, "Ana", NameOf(idx, "1"))
	assert.Equal(t, NotFoundLabel, NameOf(idx, "2"))
}
