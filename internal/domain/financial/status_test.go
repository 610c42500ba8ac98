package financial

import (
	"testing"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 12, 14, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func tx(status Status, due *time.Time) *Transaction {
	return &Transaction{Type: TypeExpense, Description: "conta", Status: status, DueDate: due, Date: now}
}

func TestIsOverdue(t *testing.T) {
	assert.True(t, IsOverdue(tx(StatusPending, day(2024, 6, 11)), now))
	assert.False(t, IsOverdue(tx(StatusPending, day(2024, 6, 12)), now), "vence hoje não está atrasada")
	assert.False(t, IsOverdue(tx(StatusPending, day(2024, 6, 20)), now))
	assert.False(t, IsOverdue(tx(StatusPending, nil), now))
	assert.False(t, IsOverdue(nil, now))
}

func TestPaidIsNeverOverdue(t *testing.T) {
	for _, due := range []*time.Time{day(2000, 1, 1), day(2024, 6, 11), day(2030, 1, 1), nil} {
		assert.False(t, IsOverdue(tx(StatusPaid, due), now))
		assert.Equal(t, DisplayPaid, Display(tx(StatusPaid, due), now))
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, DisplayOverdue, Display(tx(StatusPending, day(2024, 6, 1)), now))
	assert.Equal(t, DisplayDueSoon, Display(tx(StatusPending, day(2024, 6, 12)), now))
	assert.Equal(t, DisplayDueSoon, Display(tx(StatusPending, day(2024, 6, 16)), now))
	assert.Equal(t, DisplayPending, Display(tx(StatusPending, day(2024, 6, 17)), now))
	assert.Equal(t, DisplayPending, Display(tx(StatusPending, nil), now))
	assert.Equal(t, DisplayCancelled, Display(tx(StatusCancelled, day(2024, 6, 1)), now))

	assert.Equal(t, entity.ColorRed, DisplayOverdue.View().Color)
	assert.Equal(t, entity.ColorYellow, DisplayDueSoon.View().Color)
	assert.Equal(t, entity.ColorBlue, DisplayPending.View().Color)
	assert.Equal(t, entity.ColorGreen, DisplayPaid.View().Color)
}

func TestCalendarColor(t *testing.T) {
	assert.Equal(t, entity.ColorRed, CalendarColor(tx(StatusPending, day(2024, 6, 1)), now))
	assert.Equal(t, entity.ColorYellow, CalendarColor(tx(StatusPending, day(2024, 7, 1)), now))
	assert.Equal(t, entity.ColorGreen, CalendarColor(tx(StatusPaid, day(2024, 6, 1)), now))
	assert.Equal(t, entity.ColorGray, CalendarColor(tx(StatusCancelled, day(2024, 6, 1)), now))
}

func TestTransitions(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusPaid))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.True(t, CanTransition(StatusPaid, StatusPaid))
	assert.True(t, CanTransition(StatusPaid, StatusPending))
	assert.False(t, CanTransition(StatusPaid, StatusCancelled))
	assert.False(t, CanTransition(StatusCancelled, StatusPaid))
	assert.False(t, CanTransition(StatusCancelled, StatusPending))

	tr := tx(StatusPending, nil)
	require.NoError(t, tr.SetStatus(StatusPaid))
	assert.ErrorIs(t, tr.SetStatus(StatusCancelled), ErrInvalidStatusTransition)
	require.NoError(t, tr.SetStatus(StatusPending))
	assert.Equal(t, StatusPending, tr.Status)
	assert.ErrorIs(t, tr.SetStatus(Status("x")), ErrInvalidStatus)
}

func TestNewTransactionDefaults(t *testing.T) {
	tr, err := NewTransaction(TypeRevenue, "venda balcão", 50, now)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, tr.Status)
	assert.Equal(t, 1, tr.Installments)
	assert.Equal(t, RecurrenceNone, tr.Recurrence.Type)
	assert.Equal(t, 1, tr.Recurrence.Interval)
}

func TestValidateCategoryByType(t *testing.T) {
	tr := &Transaction{Type: TypeRevenue, Description: "x", Category: CategoryRent}
	tr.Normalize()
	assert.ErrorIs(t, tr.Validate(), ErrInvalidCategory)

	tr.Category = CategorySales
	assert.NoError(t, tr.Validate())

	tr.Type = TypeExpense
	tr.Category = CategoryServices
	assert.NoError(t, tr.Validate())
}
