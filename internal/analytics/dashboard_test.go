package analytics

import (
	"testing"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/internal/domain/service"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.June, 12, 14, 0, 0, 0, time.UTC)

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func txn(id string, typ financial.Type, amount float64, date time.Time, due *time.Time, status financial.Status) *financial.Transaction {
	return &financial.Transaction{ID: id, Type: typ, Amount: amount, Date: date, DueDate: due, Status: status, Description: id}
}

func TestComputeStats(t *testing.T) {
	sales := []*sale.Sale{{ID: "s1"}, {ID: "s2"}}
	txs := []*financial.Transaction{
		txn("r1", financial.TypeRevenue, 100, at(2024, 6, 1), nil, financial.StatusPaid),
		txn("r2", financial.TypeRevenue, 50.5, at(2024, 6, 2), nil, financial.StatusPending),
		txn("d1", financial.TypeExpense, 30, at(2024, 6, 3), nil, financial.StatusCancelled),
	}
	services := []*service.Service{
		{Status: service.StatusCompleted},
		{Status: service.StatusScheduled},
		{Status: service.StatusInProgress},
		{Status: service.StatusCancelled},
	}

	st := ComputeStats(sales, 7, txs, services)

	assert.Equal(t, Stats{TotalSales: 2, TotalClients: 7, Revenue: 150.5, Expenses: 30, ServiceSales: 1, OpenOrders: 2}, st)
}

func TestPendingFinancialUsesOverdueRule(t *testing.T) {
	txs := []*financial.Transaction{
		txn("late", financial.TypeExpense, 10, at(2024, 6, 1), ptr(at(2024, 6, 10)), financial.StatusPending),
		txn("soon", financial.TypeExpense, 10, at(2024, 6, 1), ptr(at(2024, 6, 15)), financial.StatusPending),
		txn("today", financial.TypeRevenue, 10, at(2024, 6, 1), ptr(at(2024, 6, 12)), financial.StatusPending),
		txn("far", financial.TypeExpense, 10, at(2024, 6, 1), ptr(at(2024, 6, 30)), financial.StatusPending),
		txn("paid", financial.TypeExpense, 10, at(2024, 6, 1), ptr(at(2024, 6, 10)), financial.StatusPaid),
		txn("nodue", financial.TypeExpense, 10, at(2024, 6, 1), nil, financial.StatusPending),
	}

	got := PendingFinancial(txs, now)

	ids := make([]string, 0, len(got))
	for _, t := range got {
		ids = append(ids, t.ID)
	}
	assert.Equal(t, []string{"late", "today", "soon"}, ids)
}

func TestSalesTrend(t *testing.T) {
	sales := []*sale.Sale{
		{Total: 10, CreatedDate: at(2024, 6, 1)},
		{Total: 5.25, CreatedDate: at(2024, 6, 11)},
		{Total: 7, CreatedDate: at(2024, 1, 20)},
		{Total: 99, CreatedDate: at(2023, 12, 31)},
	}

	trend := SalesTrend(sales, now)

	require.Len(t, trend, TrendMonths)
	assert.Equal(t, MonthPoint{Month: "2024-01", Label: "jan", Sales: 7}, trend[0])
	assert.Equal(t, MonthPoint{Month: "2024-06", Label: "jun", Sales: 15.25}, trend[5])
	assert.Zero(t, trend[2].Sales)
}

func TestProductRanking(t *testing.T) {
	products := []*product.Product{
		{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"},
	}
	sales := []*sale.Sale{
		{Items: []sale.Item{{ProductID: "a", Quantity: 2, Price: 10.5}, {ProductID: "b", Quantity: 1, Price: 5}}},
		{Items: []sale.Item{{ProductID: "a", Quantity: 1, Price: 10.5}, {ProductID: "ghost", Quantity: 9, Price: 1}}},
	}

	r := ProductRanking(sales, products)

	require.Len(t, r.Top, 3)
	assert.Equal(t, RankItem{ID: "a", Name: "A", Count: 3, Total: 31.5}, r.Top[0])
	assert.Equal(t, "b", r.Top[1].ID)
	assert.Equal(t, "c", r.Top[2].ID)

	require.Len(t, r.Bottom, 3)
	assert.Equal(t, RankItem{ID: "c", Name: "C"}, r.Bottom[0])
	assert.Equal(t, "b", r.Bottom[1].ID)
	assert.Equal(t, "a", r.Bottom[2].ID)
}

func TestRankLimitsToFive(t *testing.T) {
	items := make([]RankItem, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, RankItem{ID: string(rune('a' + i)), Count: float64(i)})
	}

	r := rank(items)

	require.Len(t, r.Top, RankingSize)
	assert.Equal(t, "h", r.Top[0].ID)
	require.Len(t, r.Bottom, RankingSize)
	assert.Equal(t, "a", r.Bottom[0].ID)
	assert.Equal(t, "e", r.Bottom[4].ID)
}

func TestRankBottomIncludesUnsold(t *testing.T) {
	items := []RankItem{{ID: "x", Count: 10}, {ID: "y", Count: 3}, {ID: "z", Count: 1}}
	for i := 0; i < 6; i++ {
		items = append(items, RankItem{ID: string(rune('a' + i))})
	}

	r := rank(items)

	require.Len(t, r.Bottom, RankingSize)
	for _, it := range r.Bottom {
		assert.Zero(t, it.Count, it.ID)
	}
	assert.Equal(t, "x", r.Top[0].ID)
}

func TestServiceTypeRanking(t *testing.T) {
	types := []*servicetype.ServiceType{{ID: "t1", Name: "Corte"}, {ID: "t2", Name: "Barba"}}
	services := []*service.Service{
		{ServiceTypeID: "t2", Price: 20},
		{ServiceTypeID: "t2", Price: 25},
		{ServiceTypeID: "t1", Price: 40},
		{Price: 15},
	}

	r := ServiceTypeRanking(services, types)

	assert.Equal(t, RankItem{ID: "t2", Name: "Barba", Count: 2, Total: 45}, r.Top[0])
	assert.Equal(t, RankItem{ID: "t1", Name: "Corte", Count: 1, Total: 40}, r.Top[1])
}

func TestFinancialChartKeepsLatestMonthsWithData(t *testing.T) {
	var txs []*financial.Transaction
	for m := time.January; m <= time.August; m++ {
		txs = append(txs, txn("r", financial.TypeRevenue, 100, at(2024, m, 5), nil, financial.StatusPaid))
	}
	txs = append(txs, txn("d", financial.TypeExpense, 40, at(2024, time.August, 9), nil, financial.StatusPending))

	chart := FinancialChart(txs, time.UTC)

	require.Len(t, chart, TrendMonths)
	assert.Equal(t, "2024-03", chart[0].Month)
	assert.Equal(t, FinancePoint{Month: "2024-08", Label: "ago", Revenue: 100, Expenses: 40, Profit: 60}, chart[5])
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "fev", MonthLabel("2024-02"))
	assert.Equal(t, "dez", MonthLabel("2023-12"))
	assert.Equal(t, "xx", MonthLabel("xx"))
}
