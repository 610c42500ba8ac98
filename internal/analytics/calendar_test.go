package analytics

import (
	"testing"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/internal/domain/service"
	"github.com/hugohenrick/gestor-pme/internal/domain/serviceorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calendarSources() Sources {
	return Sources{
		Clients: []*client.Client{{ID: "c1", Name: "Maria"}},
		Services: []*service.Service{
			{ID: "s1", ClientID: "c1", Description: "Corte", ScheduledDate: ptr(at(2024, 6, 14)), Status: service.StatusScheduled, Price: 40},
			{ID: "s2", ClientID: "c9", Description: "Barba", ScheduledDate: ptr(at(2024, 6, 12)), Status: service.StatusCompleted},
			{ID: "s3", ClientID: "c1", Description: "Sem data", Status: service.StatusScheduled},
		},
		Orders: []*serviceorder.ServiceOrder{
			{ID: "o1", Number: "000042", ClientID: "c1", ScheduledDate: ptr(at(2024, 6, 13)), Status: serviceorder.StatusInProgress},
			{ID: "o2", Description: "Reparo", ScheduledDate: ptr(at(2024, 6, 12)), Status: serviceorder.StatusPending},
		},
		Transactions: []*financial.Transaction{
			txn("t1", financial.TypeExpense, 80, at(2024, 6, 1), ptr(at(2024, 6, 10)), financial.StatusPending),
			txn("t2", financial.TypeRevenue, 120, at(2024, 6, 1), ptr(at(2024, 6, 16)), financial.StatusPending),
			txn("t3", financial.TypeRevenue, 50, at(2024, 6, 1), ptr(at(2024, 6, 12)), financial.StatusPaid),
			txn("t4", financial.TypeRevenue, 50, at(2024, 6, 1), nil, financial.StatusPending),
		},
	}
}

func byID(events []Event) map[string]Event {
	return entity.IndexBy(events, func(e Event) string { return e.ID })
}

func TestBuildEvents(t *testing.T) {
	events := BuildEvents(calendarSources(), now)
	require.Len(t, events, 7)

	idx := byID(events)
	assert.Equal(t, "Maria", idx["s1"].ClientName)
	assert.Equal(t, client.NotFoundLabel, idx["s2"].ClientName)
	assert.Equal(t, "OS 000042", idx["o1"].Title)
	assert.Equal(t, "Reparo", idx["o2"].Title)
	assert.Equal(t, EventExpense, idx["t1"].Type)
	assert.Equal(t, EventRevenue, idx["t2"].Type)

	assert.Equal(t, entity.ColorBlue, idx["s1"].Color)
	assert.Equal(t, entity.ColorRed, idx["t1"].Color)
	assert.Equal(t, entity.ColorYellow, idx["t2"].Color)
	assert.Equal(t, entity.ColorGreen, idx["t3"].Color)
	assert.Equal(t, "Atrasado", idx["t1"].StatusLabel)
}

func TestEventsOnSameDay(t *testing.T) {
	events := BuildEvents(calendarSources(), now)

	got := EventsOn(events, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC))

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{"s2", "o2", "t3"}, ids)
}

func TestUpcomingOnlyOpenItemsInWindow(t *testing.T) {
	events := BuildEvents(calendarSources(), now)

	got := Upcoming(events, now, UpcomingDays)

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"o1", "s1", "t2"}, ids)
}
