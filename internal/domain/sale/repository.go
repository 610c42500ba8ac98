package sale

import (
	"context"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create registra uma nova venda
	Create(ctx context.Context, s *Sale) error

	// FindByID busca uma venda pelo ID
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas com ordenação
	List(ctx context.Context, opts entity.ListOptions) ([]*Sale, error)

	// Update atualiza uma venda existente
	Update(ctx context.Context, s *Sale) error
}
