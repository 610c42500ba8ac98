package financial

import (
	"context"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

// Repository define a interface para operações de repositório de transações
type Repository interface {
	// Create cria uma nova transação
	Create(ctx context.Context, t *Transaction) error

	// FindByID busca uma transação pelo ID
	FindByID(ctx context.Context, id string) (*Transaction, error)

	// List lista as transações com ordenação
	List(ctx context.Context, opts entity.ListOptions) ([]*Transaction, error)

	// Update atualiza uma transação existente
	Update(ctx context.Context, t *Transaction) error

	// Delete remove uma transação
	Delete(ctx context.Context, id string) error
}
