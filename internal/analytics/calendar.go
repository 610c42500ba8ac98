package analytics

import (
	"sort"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/internal/domain/service"
	"github.com/hugohenrick/gestor-pme/internal/domain/serviceorder"
)

// UpcomingDays é a janela da aba de próximos eventos
const UpcomingDays = 7

// EventType identifica a origem do evento
type EventType string

const (
	EventService EventType = "service"
	EventOrder   EventType = "order"
	EventRevenue EventType = "receita"
	EventExpense EventType = "despesa"
)

// Label retorna o nome de exibição do tipo
func (t EventType) Label() string {
	switch t {
	case EventService:
		return "Serviço"
	case EventOrder:
		return "Ordem de Serviço"
	case EventRevenue:
		return "Receita"
	case EventExpense:
		return "Despesa"
	}
	return string(t)
}

// Event é um item do calendário geral
type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Date        time.Time    `json:"date"`
	Type        EventType    `json:"type"`
	TypeLabel   string       `json:"typeLabel"`
	Status      string       `json:"status"`
	StatusLabel string       `json:"statusLabel"`
	ClientName  string       `json:"clientName,omitempty"`
	Amount      float64      `json:"amount"`
	Category    string       `json:"category,omitempty"`
	Color       entity.Color `json:"color"`
	open        bool
}

// Sources são as coleções que alimentam o calendário
type Sources struct {
	Services     []*service.Service
	Orders       []*serviceorder.ServiceOrder
	Transactions []*financial.Transaction
	Clients      []*client.Client
}

// BuildEvents junta serviços agendados, ordens de serviço e transações com vencimento
func BuildEvents(src Sources, now time.Time) []Event {
	clients := entity.IndexBy(src.Clients, func(c *client.Client) string { return c.ID })
	events := make([]Event, 0, len(src.Services)+len(src.Orders)+len(src.Transactions))

	for _, s := range src.Services {
		if s.ScheduledDate == nil {
			continue
		}
		view := s.Status.View()
		events = append(events, Event{
			ID:          s.ID,
			Title:       s.Description,
			Date:        *s.ScheduledDate,
			Type:        EventService,
			TypeLabel:   EventService.Label(),
			Status:      string(s.Status),
			StatusLabel: view.Label,
			ClientName:  client.NameOf(clients, s.ClientID),
			Amount:      s.Price,
			Color:       view.Color,
			open:        s.Status == service.StatusScheduled,
		})
	}

	for _, o := range src.Orders {
		if o.ScheduledDate == nil {
			continue
		}
		view := o.Status.View()
		events = append(events, Event{
			ID:          o.ID,
			Title:       o.Title(),
			Date:        *o.ScheduledDate,
			Type:        EventOrder,
			TypeLabel:   EventOrder.Label(),
			Status:      string(o.Status),
			StatusLabel: view.Label,
			ClientName:  client.NameOf(clients, o.ClientID),
			Amount:      o.Price,
			Color:       view.Color,
			open:        o.Status == serviceorder.StatusPending || o.Status == serviceorder.StatusInProgress,
		})
	}

	for _, t := range src.Transactions {
		if t.DueDate == nil {
			continue
		}
		typ := EventExpense
		if t.Type == financial.TypeRevenue {
			typ = EventRevenue
		}
		events = append(events, Event{
			ID:          t.ID,
			Title:       t.Description,
			Date:        *t.DueDate,
			Type:        typ,
			TypeLabel:   typ.Label(),
			Status:      string(t.Status),
			StatusLabel: financial.Display(t, now).View().Label,
			Amount:      t.Amount,
			Category:    string(t.Category),
			Color:       financial.CalendarColor(t, now),
			open:        t.Status == financial.StatusPending,
		})
	}
	return events
}

// EventsOn filtra os eventos do dia de calendário de day
func EventsOn(events []Event, day time.Time) []Event {
	out := make([]Event, 0)
	for _, e := range events {
		if entity.SameDay(day, e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// Upcoming lista os eventos em aberto com data entre now e now + days, em ordem crescente
func Upcoming(events []Event, now time.Time, days int) []Event {
	limit := now.AddDate(0, 0, days)
	out := make([]Event, 0)
	for _, e := range events {
		if e.open && e.Date.After(now) && e.Date.Before(limit) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
