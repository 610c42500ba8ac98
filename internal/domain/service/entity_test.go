package service

import (
	"testing"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceDefaults(t *testing.T) {
	when := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)

	s, err := NewService("cli", &when)
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, s.Status)

	_, err = NewService("", &when)
	assert.ErrorIs(t, err, ErrEmptyClient)
}

func TestApplyServiceType(t *testing.T) {
	st := &servicetype.ServiceType{ID: "st-1", Name: "Formatação", BasePrice: 120}

	s := &Service{ClientID: "c"}
	s.ApplyServiceType(st)
	assert.Equal(t, "st-1", s.ServiceTypeID)
	assert.Equal(t, "Formatação", s.Description)
	assert.Equal(t, 120.0, s.Price)

	custom := &Service{ClientID: "c", Description: "Formatação com backup", Price: 150}
	custom.ApplyServiceType(st)
	assert.Equal(t, "Formatação com backup", custom.Description)
	assert.Equal(t, 150.0, custom.Price)
}

func TestStatusView(t *testing.T) {
	assert.Equal(t, entity.ColorBlue, StatusScheduled.View().Color)
	assert.Equal(t, entity.ColorYellow, StatusInProgress.View().Color)
	assert.Equal(t, entity.ColorGreen, StatusCompleted.View().Color)
	assert.Equal(t, entity.ColorRed, StatusCancelled.View().Color)

	assert.True(t, StatusScheduled.IsOpen())
	assert.True(t, StatusInProgress.IsOpen())
	assert.False(t, StatusCompleted.IsOpen())
	assert.False(t, StatusCancelled.IsOpen())
}
