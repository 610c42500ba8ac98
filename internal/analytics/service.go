package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/internal/domain/service"
	"github.com/hugohenrick/gestor-pme/internal/domain/serviceorder"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
)

// Repositories agrupa as fontes lidas pelos agregados
type Repositories struct {
	Sales        sale.Repository
	Clients      client.Repository
	Transactions financial.Repository
	Services     service.Repository
	Orders       serviceorder.Repository
	Products     product.Repository
	ServiceTypes servicetype.Repository
}

// Service carrega as coleções em paralelo e monta painel, calendário e resumo financeiro.
// O primeiro erro cancela as demais leituras, assim como o cancelamento do contexto da requisição.
type Service struct {
	repos Repositories
}

// NewService cria o serviço de agregação
func NewService(repos Repositories) *Service {
	return &Service{repos: repos}
}

var listAll = entity.ListOptions{Sort: entity.ParseSort("")}

// Dashboard monta o painel completo
func (s *Service) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	var (
		sales    []*sale.Sale
		clients  []*client.Client
		txs      []*financial.Transaction
		services []*service.Service
		products []*product.Product
		types    []*servicetype.ServiceType
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = s.repos.Sales.List(ctx, listAll)
		return err
	})
	g.Go(func() error {
		var err error
		clients, err = s.repos.Clients.List(ctx, listAll)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.repos.Transactions.List(ctx, listAll)
		return err
	})
	g.Go(func() error {
		var err error
		services, err = s.repos.Services.List(ctx, listAll)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.repos.Products.List(ctx, listAll)
		return err
	})
	g.Go(func() error {
		var err error
		types, err = s.repos.ServiceTypes.List(ctx, listAll)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Dashboard{
		Stats:            ComputeStats(sales, len(clients), txs, services),
		PendingFinancial: PendingFinancial(txs, now),
		SalesTrend:       SalesTrend(sales, now),
		Products:         ProductRanking(sales, products),
		ServiceTypes:     ServiceTypeRanking(services, types),
		FinancialChart:   FinancialChart(txs, now.Location()),
	}, nil
}

// CalendarView é a resposta do calendário geral
type CalendarView struct {
	Date     string  `json:"date"`
	Events   []Event `json:"events"`
	Upcoming []Event `json:"upcoming"`
}

func (s *Service) events(ctx context.Context, now time.Time) ([]Event, error) {
	var src Sources

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		src.Services, err = s.repos.Services.List(ctx, listAll)
		return err
	})
	g.Go(func() error {
		var err error
		src.Orders, err = s.repos.Orders.List(ctx, listAll)
		return err
	})
	g.Go(func() error {
		var err error
		src.Transactions, err = s.repos.Transactions.List(ctx, listAll)
		return err
	})
	g.Go(func() error {
		var err error
		src.Clients, err = s.repos.Clients.List(ctx, listAll)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return BuildEvents(src, now), nil
}

// Calendar devolve os eventos do dia selecionado e os próximos UpcomingDays dias
func (s *Service) Calendar(ctx context.Context, day, now time.Time) (*CalendarView, error) {
	events, err := s.events(ctx, now)
	if err != nil {
		return nil, err
	}
	return &CalendarView{
		Date:     day.Format("2006-01-02"),
		Events:   EventsOn(events, day),
		Upcoming: Upcoming(events, now, UpcomingDays),
	}, nil
}

// UpcomingEvents devolve apenas a aba de próximos eventos
func (s *Service) UpcomingEvents(ctx context.Context, now time.Time) ([]Event, error) {
	events, err := s.events(ctx, now)
	if err != nil {
		return nil, err
	}
	return Upcoming(events, now, UpcomingDays), nil
}

// FinancialSummary totaliza todas as transações
func (s *Service) FinancialSummary(ctx context.Context, now time.Time) (*FinancialSummary, error) {
	txs, err := s.repos.Transactions.List(ctx, entity.ListOptions{Sort: entity.Sort{Field: "date", Desc: true}})
	if err != nil {
		return nil, err
	}
	sum := Summarize(txs, now)
	return &sum, nil
}

// FinancialCalendarView é a resposta do calendário financeiro
type FinancialCalendarView struct {
	Month        string                   `json:"month"`
	Days         []CalendarDay            `json:"days"`
	Day          string                   `json:"day,omitempty"`
	Transactions []*financial.Transaction `json:"transactions"`
}

// FinancialCalendar monta os indicadores do mês e, quando day não é nulo, as transações do dia
func (s *Service) FinancialCalendar(ctx context.Context, month time.Time, day *time.Time, now time.Time) (*FinancialCalendarView, error) {
	txs, err := s.repos.Transactions.List(ctx, listAll)
	if err != nil {
		return nil, err
	}
	view := &FinancialCalendarView{
		Month:        entity.MonthKey(month),
		Days:         MonthCalendar(txs, month, now),
		Transactions: []*financial.Transaction{},
	}
	if day != nil {
		view.Day = day.Format("2006-01-02")
		view.Transactions = DayTransactions(txs, *day)
	}
	return view, nil
}

// PendingTransactions lista as pendentes que vencem antes de hoje + financial.DueSoonDays
func (s *Service) PendingTransactions(ctx context.Context, now time.Time) ([]*financial.Transaction, error) {
	txs, err := s.repos.Transactions.List(ctx, listAll)
	if err != nil {
		return nil, err
	}
	return financial.PendingSoon(txs, now), nil
}
