package dto

import (
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/serviceorder"
	"github.com/hugohenrick/gestor-pme/pkg/form"
)

// ServiceOrderProductRequest é uma peça usada na ordem.
// Sem price, o preço do catálogo é usado.
type ServiceOrderProductRequest struct {
	ProductID string             `json:"product_id" binding:"required"`
	Quantity  form.Float         `json:"quantity"`
	Price     form.OptionalFloat `json:"price" swaggertype:"number"`
}

// ServiceOrderRequest representa os dados de uma ordem de serviço.
// Data (yyyy-MM-dd) e hora (HH:mm) chegam separadas.
type ServiceOrderRequest struct {
	ClientID        string                       `json:"client_id" binding:"required"`
	ServiceTypeID   string                       `json:"service_type_id"`
	Description     string                       `json:"description"`
	Status          string                       `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	ScheduledDate   string                       `json:"scheduled_date"`
	ScheduledTime   string                       `json:"scheduled_time"`
	Price           *form.Float                  `json:"price" swaggertype:"number"`
	ClientItem      serviceorder.ClientItem      `json:"client_item"`
	Products        []ServiceOrderProductRequest `json:"products" binding:"dive"`
	TechnicianNotes string                       `json:"technician_notes"`
}

// ServiceOrderResponse acrescenta status, nomes e total da ordem
type ServiceOrderResponse struct {
	*serviceorder.ServiceOrder
	StatusView      entity.StatusView `json:"status_view"`
	ClientName      string            `json:"client_name"`
	ServiceTypeName string            `json:"service_type_name"`
	Total           float64           `json:"total"`
}
