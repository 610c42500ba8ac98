package serviceorder

import (
	"testing"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceOrderDefaults(t *testing.T) {
	o, err := NewServiceOrder("cli")
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.NotNil(t, o.Products)
	assert.Empty(t, o.Products)

	_, err = NewServiceOrder("")
	assert.ErrorIs(t, err, ErrEmptyClient)
}

func TestApplyServiceTypeOverwrites(t *testing.T) {
	o := &ServiceOrder{ClientID: "c", Description: "antiga", Price: 1}
	o.ApplyServiceType(&servicetype.ServiceType{ID: "st", Name: "Troca de tela", BasePrice: 250})

	assert.Equal(t, "Troca de tela", o.Description)
	assert.Equal(t, 250.0, o.Price)
	assert.Equal(t, "st", o.ServiceTypeID)
}

func TestTotals(t *testing.T) {
	o := &ServiceOrder{ClientID: "c", Price: 100}
	o.AddProduct("p1", 10.50, 2)
	o.AddProduct("p2", 5, 0)

	assert.Equal(t, 26.0, o.ProductsTotal())
	assert.Equal(t, 126.0, o.Total())
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "OS 000012", (&ServiceOrder{Number: "000012", Description: "x"}).Title())
	assert.Equal(t, "Reparo", (&ServiceOrder{Description: "Reparo"}).Title())
}

func TestCombineSchedule(t *testing.T) {
	got, err := CombineSchedule("2024-06-10", "14:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC), *got)

	got, err = CombineSchedule("2024-06-10", "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())

	got, err = CombineSchedule("", "10:00", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = CombineSchedule("10/06/2024", "10:00", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "000042", FormatNumber(42))
}
