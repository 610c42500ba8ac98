package pos

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
)

// ErrItemNotInCart é devolvido ao alterar uma linha inexistente
var ErrItemNotInCart = errors.New("item não está no carrinho")

// Service orquestra o carrinho, a busca de produtos e a finalização da venda
type Service struct {
	carts    CartStore
	products product.Repository
	sales    sale.Repository
	logger   logger.Logger
}

// NewService cria o serviço do PDV
func NewService(carts CartStore, products product.Repository, sales sale.Repository, log logger.Logger) *Service {
	return &Service{carts: carts, products: products, sales: sales, logger: log}
}

// GetCart devolve o carrinho do operador
func (s *Service) GetCart(ctx context.Context, operatorID string) (*Cart, error) {
	return s.carts.Load(ctx, operatorID)
}

// AddProduct inclui uma unidade do produto informado
func (s *Service) AddProduct(ctx context.Context, operatorID, productID string) (*Cart, error) {
	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.carts.Update(ctx, operatorID, func(c *Cart) error {
		c.Add(p)
		return nil
	})
}

// AddByCode inclui o produto lido pelo código de barras ou SKU
func (s *Service) AddByCode(ctx context.Context, operatorID, code string) (*Cart, error) {
	p, err := s.products.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.carts.Update(ctx, operatorID, func(c *Cart) error {
		c.Add(p)
		return nil
	})
}

// UpdateQuantity altera a quantidade de uma linha
func (s *Service) UpdateQuantity(ctx context.Context, operatorID, productID string, quantity float64) (*Cart, error) {
	return s.carts.Update(ctx, operatorID, func(c *Cart) error {
		if !c.SetQuantity(productID, quantity) {
			return ErrItemNotInCart
		}
		return nil
	})
}

// RemoveItem retira uma linha do carrinho
func (s *Service) RemoveItem(ctx context.Context, operatorID, productID string) (*Cart, error) {
	return s.carts.Update(ctx, operatorID, func(c *Cart) error {
		if !c.Remove(productID) {
			return ErrItemNotInCart
		}
		return nil
	})
}

// ClearCart esvazia o carrinho
func (s *Service) ClearCart(ctx context.Context, operatorID string) error {
	return s.carts.Delete(ctx, operatorID)
}

// FinalizeSale grava a venda e esvazia o carrinho
func (s *Service) FinalizeSale(ctx context.Context, operatorID string, co Checkout) (*sale.Sale, error) {
	cart, err := s.carts.Load(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	sl, err := Finalize(cart, co)
	if err != nil {
		return nil, err
	}
	if err := s.sales.Create(ctx, sl); err != nil {
		return nil, fmt.Errorf("erro ao registrar venda: %w", err)
	}
	if err := s.carts.Delete(ctx, operatorID); err != nil {
		// a venda já foi gravada; o carrinho expira pelo TTL
		s.logger.Warn("erro ao limpar carrinho após a venda", "operator_id", operatorID, "sale_id", sl.ID, "error", err)
	}
	s.logger.Info("venda finalizada", "sale_id", sl.ID, "total", sl.Total, "payment_method", sl.PaymentMethod)
	return sl, nil
}

// SearchProducts filtra o catálogo pelo nome, SKU ou código de barras
func (s *Service) SearchProducts(ctx context.Context, search string) ([]*product.Product, error) {
	all, err := s.products.List(ctx, entity.ListOptions{Sort: entity.Sort{Field: "name"}})
	if err != nil {
		return nil, err
	}
	return entity.Filter(all, search, (*product.Product).MatchesPOS), nil
}
