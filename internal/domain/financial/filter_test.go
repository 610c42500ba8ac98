package financial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterWeekStartsOnSunday(t *testing.T) {
	// 2024-06-12 é uma quarta-feira; a semana vai de 09/06 a 15/06
	f := Filter{Range: RangeWeek}

	start, end, ok := f.Bounds(now)
	require.True(t, ok)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, *day(2024, 6, 9), start)
	assert.Equal(t, *day(2024, 6, 16), end)

	assert.True(t, f.Match(tx(StatusPending, day(2024, 6, 9)), now))
	assert.True(t, f.Match(tx(StatusPending, day(2024, 6, 15)), now))
	assert.False(t, f.Match(tx(StatusPending, day(2024, 6, 16)), now))
}

func TestFilterUsesDueDateThenDate(t *testing.T) {
	f := Filter{Range: RangeMonth}

	withDue := &Transaction{Date: *day(2024, 5, 30), DueDate: day(2024, 6, 3)}
	withoutDue := &Transaction{Date: *day(2024, 6, 30)}
	lastMonth := &Transaction{Date: *day(2024, 5, 31)}

	assert.True(t, f.Match(withDue, now))
	assert.True(t, f.Match(withoutDue, now))
	assert.False(t, f.Match(lastMonth, now))
}

func TestFilterCustomIsInclusive(t *testing.T) {
	f := Filter{Range: RangeCustom, Start: day(2024, 1, 1), End: day(2024, 1, 31)}
	require.NoError(t, f.Validate())

	assert.True(t, f.Match(&Transaction{Date: time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC)}, now))
	assert.False(t, f.Match(&Transaction{Date: *day(2024, 2, 1)}, now))

	assert.ErrorIs(t, Filter{Range: RangeCustom}.Validate(), ErrInvalidRange)
	assert.ErrorIs(t, Filter{Range: "ano"}.Validate(), ErrInvalidRange)
}

func TestFilterByFields(t *testing.T) {
	txs := []*Transaction{
		{ID: "1", Type: TypeRevenue, Status: StatusPaid, Category: CategorySales, Date: now},
		{ID: "2", Type: TypeExpense, Status: StatusPending, Category: CategoryRent, Date: now},
		{ID: "3", Type: TypeExpense, Status: StatusPaid, Category: CategoryRent, Date: now},
	}

	got := Filter{Type: TypeExpense, Status: StatusPaid}.Apply(txs, now)
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = Filter{Category: CategoryRent, Range: RangeAll}.Apply(txs, now)
	assert.Len(t, got, 2)
}

func TestPendingSoon(t *testing.T) {
	txs := []*Transaction{
		{ID: "longe", Status: StatusPending, DueDate: day(2024, 7, 1)},
		{ID: "atrasada", Status: StatusPending, DueDate: day(2024, 6, 1)},
		{ID: "paga", Status: StatusPaid, DueDate: day(2024, 6, 13)},
		{ID: "breve", Status: StatusPending, DueDate: day(2024, 6, 14)},
		{ID: "sem", Status: StatusPending},
	}

	got := PendingSoon(txs, now)

	require.Len(t, got, 2)
	assert.Equal(t, "atrasada", got[0].ID)
	assert.Equal(t, "breve", got[1].ID)
}
