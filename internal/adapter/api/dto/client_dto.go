package dto

import (
	"github.com/hugohenrick/gestor-pme/internal/domain/client"
)

// ClientRequest representa os dados de um cliente para criação ou atualização
type ClientRequest struct {
	Name      string         `json:"name" binding:"required"`
	Document  string         `json:"document"`
	Email     string         `json:"email" binding:"omitempty,email"`
	Phone     string         `json:"phone"`
	Type      string         `json:"type" binding:"omitempty,oneof=individual business"`
	BirthDate string         `json:"birth_date"`
	Address   client.Address `json:"address"`
	Notes     string         `json:"notes"`
}

// ClientResponse acrescenta o rótulo do tipo ao cliente
type ClientResponse struct {
	*client.Client
	TypeLabel string `json:"type_label"`
}

// ToClientResponse converte um cliente do domínio para DTO de resposta
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{Client: c, TypeLabel: c.Type.Label()}
}

// ToClientResponses converte uma lista de clientes
func ToClientResponses(clients []*client.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = ToClientResponse(c)
	}
	return out
}
