package dto

import (
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/pkg/form"
)

// SaleItemRequest é uma linha da venda
type SaleItemRequest struct {
	ProductID string     `json:"product_id" binding:"required"`
	Quantity  form.Float `json:"quantity"`
	Price     form.Float `json:"price"`
}

// SaleRequest representa os dados de uma venda registrada fora do PDV
type SaleRequest struct {
	ClientID      string            `json:"client_id" binding:"required"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required,paymentmethod"`
	Installments  form.Int          `json:"installments"`
	Status        string            `json:"status" binding:"omitempty,oneof=pending completed cancelled"`
}

// SaleItems converte as linhas da requisição
func (r SaleRequest) SaleItems() []sale.Item {
	items := make([]sale.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = sale.Item{ProductID: it.ProductID, Quantity: it.Quantity.Value(), Price: it.Price.Value()}
	}
	return items
}

// SaleResponse acrescenta os rótulos e o nome do cliente à venda
type SaleResponse struct {
	*sale.Sale
	PaymentMethodLabel string `json:"payment_method_label"`
	ClientName         string `json:"client_name"`
}
