package client

import (
	"context"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Client) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Client, error)

	// List lista os clientes com ordenação e busca
	List(ctx context.Context, opts entity.ListOptions) ([]*Client, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Client) error

	// Delete remove um cliente
	Delete(ctx context.Context, id string) error
}
