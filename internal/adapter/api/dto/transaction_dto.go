package dto

import (
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/pkg/form"
)

// RecurrenceRequest descreve a repetição da transação
type RecurrenceRequest struct {
	Type     string   `json:"type" binding:"omitempty,oneof=none daily weekly monthly yearly"`
	Interval form.Int `json:"interval"`
	EndDate  string   `json:"end_date"`
}

// TransactionRequest representa os dados de uma receita ou despesa
type TransactionRequest struct {
	Type          string            `json:"type" binding:"required,oneof=receita despesa"`
	Description   string            `json:"description" binding:"required"`
	Amount        form.Float        `json:"amount"`
	Date          string            `json:"date" binding:"required"`
	DueDate       string            `json:"due_date"`
	Status        string            `json:"status" binding:"omitempty,oneof=pendente pago cancelado"`
	Category      string            `json:"category"`
	PaymentMethod string            `json:"payment_method"`
	Installments  form.Int          `json:"installments"`
	Recurrence    RecurrenceRequest `json:"recurrence"`
	Notes         string            `json:"notes"`
}

// Apply copia os campos da requisição para a transação. O status não é alterado aqui.
func (r TransactionRequest) Apply(t *financial.Transaction, loc *time.Location) error {
	date, err := ParseDate(r.Date, loc)
	if err != nil {
		return err
	}
	due, err := ParseDate(r.DueDate, loc)
	if err != nil {
		return err
	}
	end, err := ParseDate(r.Recurrence.EndDate, loc)
	if err != nil {
		return err
	}

	t.Type = financial.Type(r.Type)
	t.Description = r.Description
	t.Amount = r.Amount.Value()
	if date != nil {
		t.Date = *date
	}
	t.DueDate = due
	t.Category = financial.Category(r.Category)
	t.PaymentMethod = financial.PaymentMethod(r.PaymentMethod)
	t.Installments = r.Installments.Or(1)
	t.Recurrence = financial.Recurrence{
		Type:     financial.RecurrenceType(r.Recurrence.Type),
		Interval: r.Recurrence.Interval.Or(1),
		EndDate:  end,
	}
	t.Notes = r.Notes
	t.UpdatedDate = time.Now()
	t.Normalize()
	return t.Validate()
}

// StatusRequest altera apenas o status de um registro
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TransactionResponse acrescenta o status de exibição à transação
type TransactionResponse struct {
	*financial.Transaction
	TypeLabel     string            `json:"type_label"`
	CategoryLabel string            `json:"category_label"`
	Display       entity.StatusView `json:"display_status"`
	Overdue       bool              `json:"overdue"`
}

// ToTransactionResponse converte uma transação usando now como referência de atraso
func ToTransactionResponse(t *financial.Transaction, now time.Time) TransactionResponse {
	return TransactionResponse{
		Transaction:   t,
		TypeLabel:     t.Type.Label(),
		CategoryLabel: t.Category.Label(),
		Display:       financial.Display(t, now).View(),
		Overdue:       financial.IsOverdue(t, now),
	}
}

// ToTransactionResponses converte uma lista de transações
func ToTransactionResponses(txs []*financial.Transaction, now time.Time) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		out[i] = ToTransactionResponse(t, now)
	}
	return out
}

// FinancialOptionsResponse lista as categorias por tipo e as formas de pagamento
type FinancialOptionsResponse struct {
	Categories     map[string][]Option `json:"categories"`
	PaymentMethods []Option            `json:"payment_methods"`
}

// NewFinancialOptionsResponse monta as opções dos formulários financeiros
func NewFinancialOptionsResponse() FinancialOptionsResponse {
	resp := FinancialOptionsResponse{Categories: map[string][]Option{}}
	for _, t := range []financial.Type{financial.TypeRevenue, financial.TypeExpense} {
		for _, c := range financial.Categories(t) {
			resp.Categories[string(t)] = append(resp.Categories[string(t)], Option{Value: string(c), Label: c.Label()})
		}
	}
	for _, m := range financial.PaymentMethods {
		resp.PaymentMethods = append(resp.PaymentMethods, Option{Value: string(m), Label: m.Label()})
	}
	return resp
}
