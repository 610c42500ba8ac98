package analytics

import (
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/pkg/money"
)

// FinancialSummary é o resumo exibido no topo do módulo financeiro
type FinancialSummary struct {
	TotalRevenue    float64        `json:"totalRevenue"`
	TotalExpenses   float64        `json:"totalExpenses"`
	Balance         float64        `json:"balance"`
	PendingRevenue  float64        `json:"pendingRevenue"`
	PendingExpenses float64        `json:"pendingExpenses"`
	Chart           []FinancePoint `json:"chart"`
}

// Summarize totaliza as transações e monta o gráfico dos últimos TrendMonths meses
func Summarize(txs []*financial.Transaction, now time.Time) FinancialSummary {
	isRevenue := func(t *financial.Transaction) bool { return t.Type == financial.TypeRevenue }
	isExpense := func(t *financial.Transaction) bool { return t.Type == financial.TypeExpense }

	pendingRevenue := func(t *financial.Transaction) bool { return isRevenue(t) && t.Status == financial.StatusPending }
	pendingExpense := func(t *financial.Transaction) bool { return isExpense(t) && t.Status == financial.StatusPending }

	s := FinancialSummary{
		TotalRevenue:    sumAmounts(txs, isRevenue),
		TotalExpenses:   sumAmounts(txs, isExpense),
		PendingRevenue:  sumAmounts(txs, pendingRevenue),
		PendingExpenses: sumAmounts(txs, pendingExpense),
	}
	s.Balance = money.Sub(s.TotalRevenue, s.TotalExpenses)

	keys := entity.LastMonths(now, TrendMonths)
	points := make(map[string]*FinancePoint, len(keys))
	s.Chart = make([]FinancePoint, len(keys))
	for i, k := range keys {
		s.Chart[i] = FinancePoint{Month: k, Label: MonthLabel(k)}
		points[k] = &s.Chart[i]
	}
	for _, t := range txs {
		p, ok := points[entity.MonthKey(t.Date.In(now.Location()))]
		if !ok {
			continue
		}
		if isRevenue(t) {
			p.Revenue = money.Add(p.Revenue, t.Amount)
		} else {
			p.Expenses = money.Add(p.Expenses, t.Amount)
		}
	}
	for i := range s.Chart {
		s.Chart[i].Profit = money.Sub(s.Chart[i].Revenue, s.Chart[i].Expenses)
	}
	return s
}

// CalendarDay são os indicadores de um dia no calendário financeiro
type CalendarDay struct {
	Date       string  `json:"date"`
	HasRevenue bool    `json:"hasRevenue"`
	HasExpense bool    `json:"hasExpense"`
	HasOverdue bool    `json:"hasOverdue"`
	Total      float64 `json:"total"`
}

// MonthCalendar calcula os indicadores de cada dia do mês de month pela data da transação
func MonthCalendar(txs []*financial.Transaction, month, now time.Time) []CalendarDay {
	loc := month.Location()
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, loc)
	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		cd := CalendarDay{Date: d.Format("2006-01-02")}
		for _, t := range DayTransactions(txs, d) {
			switch t.Type {
			case financial.TypeRevenue:
				cd.HasRevenue = true
			case financial.TypeExpense:
				cd.HasExpense = true
			}
			if financial.IsOverdue(t, now) {
				cd.HasOverdue = true
			}
			cd.Total = money.Add(cd.Total, t.SignedAmount())
		}
		days = append(days, cd)
	}
	return days
}

// DayTransactions filtra as transações cuja data cai no dia de day
func DayTransactions(txs []*financial.Transaction, day time.Time) []*financial.Transaction {
	out := make([]*financial.Transaction, 0)
	for _, t := range txs {
		if entity.SameDay(day, t.Date) {
			out = append(out, t)
		}
	}
	return out
}
