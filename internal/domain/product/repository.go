package product

import (
	"context"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByCode busca um produto pelo código de barras ou SKU exatos
	FindByCode(ctx context.Context, code string) (*Product, error)

	// List lista os produtos com ordenação e busca
	List(ctx context.Context, opts entity.ListOptions) ([]*Product, error)

	// Update atualiza um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error
}
