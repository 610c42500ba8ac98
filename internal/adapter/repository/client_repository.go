package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const clientColumns = `id, name, document, email, phone, type, birth_date, address, notes, created_date, updated_date`

var clientSort = baseSortColumns("name", "document", "type")

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

func scanClient(row scanner) (*client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Type,
		&c.BirthDate, &c.Address, &c.Notes, &c.CreatedDate, &c.UpdatedDate)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO clients (`+clientColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.Name, c.Document, c.Email, c.Phone, c.Type,
		c.BirthDate, c.Address, c.Notes, c.CreatedDate, c.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	c, err := scanClient(r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, client.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return c, nil
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, opts entity.ListOptions) ([]*client.Client, error) {
	order, err := orderBy(opts.Sort, clientSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+clientColumns+` FROM clients`+order)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	clients, err := collect(rows, scanClient)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler clientes: %w", err)
	}
	return entity.Filter(clients, opts.Search, (*client.Client).Matches), nil
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients SET
			name = $2, document = $3, email = $4, phone = $5, type = $6,
			birth_date = $7, address = $8, notes = $9, updated_date = $10
		WHERE id = $1`,
		c.ID, c.Name, c.Document, c.Email, c.Phone, c.Type,
		c.BirthDate, c.Address, c.Notes, c.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	return affected(tag, client.ErrNotFound)
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}
	return affected(tag, client.ErrNotFound)
}
