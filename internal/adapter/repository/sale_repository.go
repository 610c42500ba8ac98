package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const saleColumns = `id, client_id, items, total, payment_method, installments, status, created_date, updated_date`

var saleSort = baseSortColumns("total", "payment_method", "status")

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

func scanSale(row scanner) (*sale.Sale, error) {
	var s sale.Sale
	err := row.Scan(
		&s.ID, &s.ClientID, &s.Items, &s.Total, &s.PaymentMethod,
		&s.Installments, &s.Status, &s.CreatedDate, &s.UpdatedDate)
	if err != nil {
		return nil, err
	}
	if s.Items == nil {
		s.Items = []sale.Item{}
	}
	return &s, nil
}

// Create implementa sale.Repository.Create
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sales (`+saleColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.ClientID, s.Items, s.Total, s.PaymentMethod,
		s.Installments, s.Status, s.CreatedDate, s.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao registrar venda: %w", err)
	}
	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	s, err := scanSale(r.db.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sale.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}
	return s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, opts entity.ListOptions) ([]*sale.Sale, error) {
	order, err := orderBy(opts.Sort, saleSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+saleColumns+` FROM sales`+order)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	sales, err := collect(rows, scanSale)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler vendas: %w", err)
	}
	return sales, nil
}

// Update implementa sale.Repository.Update
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE sales SET
			client_id = $2, items = $3, total = $4, payment_method = $5,
			installments = $6, status = $7, updated_date = $8
		WHERE id = $1`,
		s.ID, s.ClientID, s.Items, s.Total, s.PaymentMethod,
		s.Installments, s.Status, s.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}
	return affected(tag, sale.ErrNotFound)
}
