package dto

import (
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/internal/pos"
	"github.com/hugohenrick/gestor-pme/pkg/form"
)

// AddItemRequest inclui um produto do catálogo no carrinho
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// ScanRequest inclui um produto pelo código lido
type ScanRequest struct {
	Code string `json:"code" binding:"required"`
}

// QuantityRequest altera a quantidade de uma linha
type QuantityRequest struct {
	Quantity form.Float `json:"quantity"`
}

// CheckoutRequest finaliza a venda. Os campos ausentes são tratados na finalização.
type CheckoutRequest struct {
	ClientID      string   `json:"client_id"`
	PaymentMethod string   `json:"payment_method"`
	Installments  form.Int `json:"installments"`
}

// Checkout converte a requisição para o PDV
func (r CheckoutRequest) Checkout() pos.Checkout {
	return pos.Checkout{
		ClientID:      r.ClientID,
		PaymentMethod: sale.PaymentMethod(r.PaymentMethod),
		Installments:  int(r.Installments),
	}
}

// CartLineResponse é uma linha do carrinho com o total calculado
type CartLineResponse struct {
	pos.Line
	Total float64 `json:"total"`
}

// CartResponse representa o carrinho do operador
type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total float64            `json:"total"`
	Count float64            `json:"count"`
}

// ToCartResponse converte o carrinho
func ToCartResponse(c *pos.Cart) CartResponse {
	if c == nil {
		c = pos.NewCart()
	}
	lines := make([]CartLineResponse, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = CartLineResponse{Line: l, Total: l.Total()}
	}
	return CartResponse{Lines: lines, Total: c.Total(), Count: c.Count()}
}

// PaymentMethodOption é uma forma de pagamento aceita no PDV
type PaymentMethodOption struct {
	Option
	AllowsInstallments bool `json:"allows_installments"`
}

// POSPaymentMethods lista as formas de pagamento do PDV
func POSPaymentMethods() []PaymentMethodOption {
	out := make([]PaymentMethodOption, len(sale.PaymentMethods))
	for i, m := range sale.PaymentMethods {
		out[i] = PaymentMethodOption{
			Option:             Option{Value: string(m), Label: m.Label()},
			AllowsInstallments: m.AllowsInstallments(),
		}
	}
	return out
}
