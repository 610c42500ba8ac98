package dto

import (
	"github.com/hugohenrick/gestor-pme/internal/domain/quote"
	"github.com/hugohenrick/gestor-pme/pkg/form"
)

// QuoteItemRequest é uma linha do orçamento.
// Em produtos e tipos de serviço, nome e preço do cadastro são usados apenas quando
// description e unit_price não são enviados. Quantidade ausente vale 1.
type QuoteItemRequest struct {
	Type          string             `json:"type" binding:"required,oneof=product service custom"`
	ProductID     string             `json:"product_id" binding:"required_if=Type product"`
	ServiceTypeID string             `json:"service_type_id" binding:"required_if=Type service"`
	Description   string             `json:"description" binding:"required_if=Type custom"`
	Quantity      form.OptionalFloat `json:"quantity" swaggertype:"number"`
	UnitPrice     form.OptionalFloat `json:"unit_price" swaggertype:"number"`
}

// QuoteRequest representa os dados de um orçamento
type QuoteRequest struct {
	ClientID   string             `json:"client_id" binding:"required"`
	Items      []QuoteItemRequest `json:"items" binding:"dive"`
	ValidUntil string             `json:"valid_until"`
	Notes      string             `json:"notes"`
}

// QuoteResponse acrescenta o rótulo do status e o nome do cliente
type QuoteResponse struct {
	*quote.Quote
	StatusLabel string `json:"status_label"`
	ClientName  string `json:"client_name"`
}

// ToQuoteResponse converte um orçamento do domínio para DTO de resposta
func ToQuoteResponse(q *quote.Quote, clientName string) QuoteResponse {
	return QuoteResponse{Quote: q, StatusLabel: q.Status.Label(), ClientName: clientName}
}

// QuoteStatusOptions lista os status do menu de ações
func QuoteStatusOptions() []Option {
	out := make([]Option, len(quote.Statuses))
	for i, s := range quote.Statuses {
		out[i] = Option{Value: string(s), Label: s.Label()}
	}
	return out
}
