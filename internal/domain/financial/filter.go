package financial

import (
	"errors"
	"sort"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

// ErrInvalidRange indica um período de filtro desconhecido ou incompleto
var ErrInvalidRange = errors.New("período inválido")

// Range define o período do filtro da listagem
type Range string

const (
	RangeAll    Range = "all"
	RangeMonth  Range = "month"
	RangeWeek   Range = "week"
	RangeCustom Range = "custom"
)

// Filter reúne os filtros da listagem de transações
type Filter struct {
	Type     Type
	Status   Status
	Category Category
	Range    Range
	Start    *time.Time
	End      *time.Time
}

// Validate verifica se o período é consistente
func (f Filter) Validate() error {
	switch f.Range {
	case "", RangeAll, RangeMonth, RangeWeek:
		return nil
	case RangeCustom:
		if f.Start == nil || f.End == nil {
			return ErrInvalidRange
		}
		return nil
	}
	return ErrInvalidRange
}

// Bounds devolve o intervalo [início, fim) do período em relação a now
func (f Filter) Bounds(now time.Time) (start, end time.Time, ok bool) {
	today := entity.StartOfDay(now)
	switch f.Range {
	case RangeMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, 0), true
	case RangeWeek:
		start = today.AddDate(0, 0, -int(today.Weekday()))
		return start, start.AddDate(0, 0, 7), true
	case RangeCustom:
		if f.Start == nil || f.End == nil {
			return time.Time{}, time.Time{}, false
		}
		return entity.StartOfDay(f.Start.In(now.Location())), entity.StartOfDay(f.End.In(now.Location())).AddDate(0, 0, 1), true
	}
	return time.Time{}, time.Time{}, false
}

// Match informa se a transação satisfaz o filtro
func (f Filter) Match(t *Transaction, now time.Time) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	start, end, bounded := f.Bounds(now)
	if !bounded {
		return true
	}
	ref := t.ReferenceDate().In(now.Location())
	return !ref.Before(start) && ref.Before(end)
}

// Apply devolve as transações que satisfazem o filtro, mantendo a ordem
func (f Filter) Apply(txs []*Transaction, now time.Time) []*Transaction {
	out := make([]*Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Match(t, now) {
			out = append(out, t)
		}
	}
	return out
}

// PendingSoon lista as pendentes que vencem antes de hoje + DueSoonDays (incluindo atrasadas),
// ordenadas pelo vencimento
func PendingSoon(txs []*Transaction, now time.Time) []*Transaction {
	limit := entity.StartOfDay(now).AddDate(0, 0, DueSoonDays)
	out := make([]*Transaction, 0)
	for _, t := range txs {
		if t.Status != StatusPending || t.DueDate == nil {
			continue
		}
		if t.DueDate.Before(limit) {
			out = append(out, t)
		}
	}
	SortByDueDate(out)
	return out
}

// SortByDueDate ordena por vencimento crescente; sem vencimento vai para o fim
func SortByDueDate(txs []*Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i].DueDate, txs[j].DueDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
}
