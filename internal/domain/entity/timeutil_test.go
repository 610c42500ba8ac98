package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC)
	assert.True(t, SameDay(a, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)))
	assert.False(t, SameDay(a, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC)))
}

func TestLastMonthsCrossesYear(t *testing.T) {
	now := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{"2023-09", "2023-10", "2023-11", "2023-12", "2024-01", "2024-02"}, LastMonths(now, 6))
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(time.Date(2024, 5, 10, 15, 4, 5, 6, time.UTC))
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), got)
}
