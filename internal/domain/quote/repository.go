package quote

import (
	"context"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

// Repository define a interface para operações de repositório de orçamentos
type Repository interface {
	// Create cria um novo orçamento
	Create(ctx context.Context, q *Quote) error

	// FindByID busca um orçamento pelo ID
	FindByID(ctx context.Context, id string) (*Quote, error)

	// List lista os orçamentos com ordenação
	List(ctx context.Context, opts entity.ListOptions) ([]*Quote, error)

	// Update atualiza um orçamento existente
	Update(ctx context.Context, q *Quote) error

	// Delete remove um orçamento
	Delete(ctx context.Context, id string) error
}
