package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, description, sku, barcode, price, cost, stock, category, unit,
	weight, volume, length, width, height, active, created_date, updated_date`

var productSort = baseSortColumns("name", "price", "stock", "category", "sku")

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

func scanProduct(row scanner) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.SKU, &p.Barcode, &p.Price, &p.Cost,
		&p.Stock, &p.Category, &p.Unit, &p.Weight, &p.Volume, &p.Length,
		&p.Width, &p.Height, &p.Active, &p.CreatedDate, &p.UpdatedDate)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		p.ID, p.Name, p.Description, p.SKU, p.Barcode, p.Price, p.Cost,
		p.Stock, p.Category, p.Unit, p.Weight, p.Volume, p.Length,
		p.Width, p.Height, p.Active, p.CreatedDate, p.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao criar produto: %w", err)
	}
	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// FindByCode implementa product.Repository.FindByCode
func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, product.ErrNotFound
	}
	return r.findOne(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE barcode = $1 OR sku = $1
		ORDER BY created_date LIMIT 1`, code)
}

func (r *ProductRepository) findOne(ctx context.Context, query string, arg string) (*product.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, opts entity.ListOptions) ([]*product.Product, error) {
	order, err := orderBy(opts.Sort, productSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products`+order)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	products, err := collect(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler produtos: %w", err)
	}
	return entity.Filter(products, opts.Search, (*product.Product).Matches), nil
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $2, description = $3, sku = $4, barcode = $5, price = $6,
			cost = $7, stock = $8, category = $9, unit = $10, weight = $11,
			volume = $12, length = $13, width = $14, height = $15, active = $16,
			updated_date = $17
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.SKU, p.Barcode, p.Price,
		p.Cost, p.Stock, p.Category, p.Unit, p.Weight,
		p.Volume, p.Length, p.Width, p.Height, p.Active, p.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	return affected(tag, product.ErrNotFound)
}

// Delete implementa product.Repository.Delete
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir produto: %w", err)
	}
	return affected(tag, product.ErrNotFound)
}
