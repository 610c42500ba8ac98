// Package analytics agrega os dados do painel, do calendário e do resumo financeiro.
package analytics

import (
	"sort"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/internal/domain/service"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/hugohenrick/gestor-pme/pkg/money"
)

const (
	// TrendMonths é a janela dos gráficos mensais
	TrendMonths = 6
	// RankingSize é o tamanho das listas de mais e menos vendidos
	RankingSize = 5
	// PendingWindowDays é a antecedência das contas destacadas no painel
	PendingWindowDays = 7
)

// Stats são os indicadores principais do painel
type Stats struct {
	TotalSales   int     `json:"totalSales"`
	TotalClients int     `json:"totalClients"`
	Revenue      float64 `json:"revenue"`
	Expenses     float64 `json:"expenses"`
	ServiceSales int     `json:"serviceSales"`
	OpenOrders   int     `json:"openOrders"`
}

// ComputeStats calcula os indicadores. Receitas e despesas somam todos os status.
func ComputeStats(sales []*sale.Sale, clientCount int, txs []*financial.Transaction, services []*service.Service) Stats {
	st := Stats{
		TotalSales:   len(sales),
		TotalClients: clientCount,
		Revenue:      sumAmounts(txs, func(t *financial.Transaction) bool { return t.Type == financial.TypeRevenue }),
		Expenses:     sumAmounts(txs, func(t *financial.Transaction) bool { return t.Type == financial.TypeExpense }),
	}
	for _, s := range services {
		if s.Status == service.StatusCompleted {
			st.ServiceSales++
		}
		if s.Status.IsOpen() {
			st.OpenOrders++
		}
	}
	return st
}

func sumAmounts(txs []*financial.Transaction, keep func(*financial.Transaction) bool) float64 {
	var total float64
	for _, t := range txs {
		if keep(t) {
			total = money.Add(total, t.Amount)
		}
	}
	return total
}

// PendingFinancial lista as pendentes atrasadas ou que vencem nos próximos PendingWindowDays dias
func PendingFinancial(txs []*financial.Transaction, now time.Time) []*financial.Transaction {
	out := make([]*financial.Transaction, 0)
	for _, t := range txs {
		if t.Status != financial.StatusPending || t.DueDate == nil {
			continue
		}
		if financial.IsOverdue(t, now) || financial.IsDueWithin(t, now, PendingWindowDays) {
			out = append(out, t)
		}
	}
	financial.SortByDueDate(out)
	return out
}

// MonthPoint é o valor de vendas de um mês
type MonthPoint struct {
	Month string  `json:"month"`
	Label string  `json:"label"`
	Sales float64 `json:"vendas"`
}

// SalesTrend soma o total das vendas dos últimos TrendMonths meses pela data de criação
func SalesTrend(sales []*sale.Sale, now time.Time) []MonthPoint {
	keys := entity.LastMonths(now, TrendMonths)
	byMonth := make(map[string]float64, len(keys))
	for _, k := range keys {
		byMonth[k] = 0
	}
	for _, s := range sales {
		k := entity.MonthKey(s.CreatedDate.In(now.Location()))
		if _, ok := byMonth[k]; ok {
			byMonth[k] = money.Add(byMonth[k], s.Total)
		}
	}
	out := make([]MonthPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthPoint{Month: k, Label: MonthLabel(k), Sales: byMonth[k]})
	}
	return out
}

// RankItem é uma linha do ranking de produtos ou serviços
type RankItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Count float64 `json:"count"`
	Total float64 `json:"total"`
}

// Ranking reúne os mais e os menos vendidos
type Ranking struct {
	Top    []RankItem `json:"top"`
	Bottom []RankItem `json:"bottom"`
}

// ProductRanking conta a quantidade vendida de cada produto do catálogo
func ProductRanking(sales []*sale.Sale, products []*product.Product) Ranking {
	type acc struct{ count, total float64 }
	sold := make(map[string]*acc)
	for _, s := range sales {
		for _, it := range s.Items {
			if it.ProductID == "" {
				continue
			}
			a, ok := sold[it.ProductID]
			if !ok {
				a = &acc{}
				sold[it.ProductID] = a
			}
			a.count += it.Quantity
			a.total = money.Add(a.total, it.Total())
		}
	}
	items := make([]RankItem, 0, len(products))
	for _, p := range products {
		it := RankItem{ID: p.ID, Name: p.Name}
		if a, ok := sold[p.ID]; ok {
			it.Count, it.Total = a.count, a.total
		}
		items = append(items, it)
	}
	return rank(items)
}

// ServiceTypeRanking conta os serviços realizados por tipo
func ServiceTypeRanking(services []*service.Service, types []*servicetype.ServiceType) Ranking {
	type acc struct{ count, total float64 }
	done := make(map[string]*acc)
	for _, s := range services {
		if s.ServiceTypeID == "" {
			continue
		}
		a, ok := done[s.ServiceTypeID]
		if !ok {
			a = &acc{}
			done[s.ServiceTypeID] = a
		}
		a.count++
		a.total = money.Add(a.total, s.Price)
	}
	items := make([]RankItem, 0, len(types))
	for _, st := range types {
		it := RankItem{ID: st.ID, Name: st.Name}
		if a, ok := done[st.ID]; ok {
			it.Count, it.Total = a.count, a.total
		}
		items = append(items, it)
	}
	return rank(items)
}

// rank ordena por quantidade decrescente. A lista de menos vendidos é a mesma ordem
// invertida e inclui itens sem venda.
func rank(items []RankItem) Ranking {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })

	top := items
	if len(top) > RankingSize {
		top = top[:RankingSize]
	}

	n := min(RankingSize, len(items))
	bottom := make([]RankItem, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		bottom = append(bottom, items[i])
	}
	return Ranking{Top: append([]RankItem{}, top...), Bottom: bottom}
}

// FinancePoint é o consolidado mensal de receitas e despesas
type FinancePoint struct {
	Month    string  `json:"month"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"receitas"`
	Expenses float64 `json:"despesas"`
	Profit   float64 `json:"lucro"`
}

// FinancialChart agrupa as transações por mês da data e devolve os TrendMonths meses mais recentes com movimento
func FinancialChart(txs []*financial.Transaction, loc *time.Location) []FinancePoint {
	byMonth := make(map[string]*FinancePoint)
	for _, t := range txs {
		k := entity.MonthKey(t.Date.In(loc))
		p, ok := byMonth[k]
		if !ok {
			p = &FinancePoint{Month: k, Label: MonthLabel(k)}
			byMonth[k] = p
		}
		switch t.Type {
		case financial.TypeRevenue:
			p.Revenue = money.Add(p.Revenue, t.Amount)
		default:
			p.Expenses = money.Add(p.Expenses, t.Amount)
		}
	}
	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > TrendMonths {
		keys = keys[len(keys)-TrendMonths:]
	}
	out := make([]FinancePoint, 0, len(keys))
	for _, k := range keys {
		p := byMonth[k]
		p.Profit = money.Sub(p.Revenue, p.Expenses)
		out = append(out, *p)
	}
	return out
}

var monthLabels = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// MonthLabel converte "yyyy-MM" na abreviação do mês em português
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return monthLabels[t.Month()-1]
}

// Dashboard é a resposta completa do painel
type Dashboard struct {
	Stats            Stats                    `json:"stats"`
	PendingFinancial []*financial.Transaction `json:"pendingFinancial"`
	SalesTrend       []MonthPoint             `json:"salesTrend"`
	Products         Ranking                  `json:"products"`
	ServiceTypes     Ranking                  `json:"serviceTypes"`
	FinancialChart   []FinancePoint           `json:"financialChart"`
}
