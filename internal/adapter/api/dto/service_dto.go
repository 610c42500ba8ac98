package dto

import (
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/service"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/hugohenrick/gestor-pme/pkg/form"
)

// ServiceTypeRequest representa os dados de um tipo de serviço
type ServiceTypeRequest struct {
	Name            string           `json:"name" binding:"required"`
	Description     string           `json:"description"`
	BasePrice       form.Float       `json:"base_price"`
	DurationMinutes form.OptionalInt `json:"duration_minutes" swaggertype:"integer"`
	Category        string           `json:"category"`
	Active          *bool            `json:"active" binding:"required"`
}

// Apply copia os campos da requisição para o tipo de serviço
func (r ServiceTypeRequest) Apply(st *servicetype.ServiceType) {
	st.Name = r.Name
	st.Description = r.Description
	st.BasePrice = r.BasePrice.Value()
	st.DurationMinutes = r.DurationMinutes.Ptr()
	st.Category = r.Category
	if r.Active != nil {
		st.Active = *r.Active
	}
}

// ServiceRequest representa um agendamento de serviço
type ServiceRequest struct {
	ClientID      string     `json:"client_id" binding:"required"`
	ServiceTypeID string     `json:"service_type_id"`
	Description   string     `json:"description"`
	ScheduledDate string     `json:"scheduled_date"`
	Price         form.Float `json:"price"`
	Status        string     `json:"status" binding:"omitempty,oneof=agendado em_andamento concluido cancelado"`
	Notes         string     `json:"notes"`
}

// ServiceResponse acrescenta status, cliente e tipo de serviço para exibição
type ServiceResponse struct {
	*service.Service
	StatusView      entity.StatusView `json:"status_view"`
	ClientName      string            `json:"client_name"`
	ServiceTypeName string            `json:"service_type_name"`
}
