package financial

import (
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

// Status representa o status armazenado da transação
type Status string

const (
	StatusPending   Status = "pendente"
	StatusPaid      Status = "pago"
	StatusCancelled Status = "cancelado"
)

// Valid informa se o status é conhecido
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	}
	return false
}

// CanTransition informa se from pode passar para to.
// Pendente vai para pago ou cancelado; pago pode ser estornado para pendente.
func CanTransition(from, to Status) bool {
	switch {
	case from == to:
		return true
	case from == StatusPending:
		return to == StatusPaid || to == StatusCancelled
	case from == StatusPaid:
		return to == StatusPending
	}
	return false
}

// DueSoonDays é a antecedência em que um vencimento passa a ser destacado
const DueSoonDays = 5

// IsOverdue é a regra única de atraso: pendente com vencimento antes do dia de now
func IsOverdue(t *Transaction, now time.Time) bool {
	if t == nil || t.Status != StatusPending || t.DueDate == nil {
		return false
	}
	return entity.StartOfDay(t.DueDate.In(now.Location())).Before(entity.StartOfDay(now))
}

// DisplayStatus é o status derivado exibido na listagem
type DisplayStatus string

const (
	DisplayPaid      DisplayStatus = "pago"
	DisplayCancelled DisplayStatus = "cancelado"
	DisplayOverdue   DisplayStatus = "atrasado"
	DisplayDueSoon   DisplayStatus = "vencendo"
	DisplayPending   DisplayStatus = "pendente"
)

// View retorna rótulo e cor do status derivado
func (d DisplayStatus) View() entity.StatusView {
	switch d {
	case DisplayPaid:
		return entity.StatusView{Value: string(d), Label: "Pago", Color: entity.ColorGreen}
	case DisplayCancelled:
		return entity.StatusView{Value: string(d), Label: "Cancelado", Color: entity.ColorRed}
	case DisplayOverdue:
		return entity.StatusView{Value: string(d), Label: "Atrasado", Color: entity.ColorRed}
	case DisplayDueSoon:
		return entity.StatusView{Value: string(d), Label: "Vence em breve", Color: entity.ColorYellow}
	default:
		return entity.StatusView{Value: string(DisplayPending), Label: "Pendente", Color: entity.ColorBlue}
	}
}

// Display calcula o status derivado da transação em relação a now
func Display(t *Transaction, now time.Time) DisplayStatus {
	switch t.Status {
	case StatusPaid:
		return DisplayPaid
	case StatusCancelled:
		return DisplayCancelled
	}
	if IsOverdue(t, now) {
		return DisplayOverdue
	}
	if t.DueDate != nil && IsDueWithin(t, now, DueSoonDays) {
		return DisplayDueSoon
	}
	return DisplayPending
}

// IsDueWithin informa se o vencimento cai antes de hoje + days, sem estar atrasado
func IsDueWithin(t *Transaction, now time.Time, days int) bool {
	if t.DueDate == nil {
		return false
	}
	today := entity.StartOfDay(now)
	due := entity.StartOfDay(t.DueDate.In(now.Location()))
	return !due.Before(today) && due.Before(today.AddDate(0, 0, days))
}

// CalendarColor é a cor de uma transação no calendário geral
func CalendarColor(t *Transaction, now time.Time) entity.Color {
	switch {
	case IsOverdue(t, now):
		return entity.ColorRed
	case t.Status == StatusPending:
		return entity.ColorYellow
	case t.Status == StatusPaid:
		return entity.ColorGreen
	default:
		return entity.ColorGray
	}
}
