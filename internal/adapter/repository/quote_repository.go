package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/quote"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const quoteColumns = `id, client_id, items, total, status, valid_until, notes, created_date, updated_date`

var quoteSort = map[string]string{
	"id":           "q.id",
	"created_date": "q.created_date",
	"updated_date": "q.updated_date",
	"total":        "q.total",
	"status":       "q.status",
	"valid_until":  "q.valid_until",
}

// QuoteRepository implementa a interface quote.Repository
type QuoteRepository struct {
	db *pgxpool.Pool
}

// NewQuoteRepository cria uma nova instância de QuoteRepository
func NewQuoteRepository(db *pgxpool.Pool) quote.Repository {
	return &QuoteRepository{
		db: db,
	}
}

func scanQuote(row scanner, extra ...any) (*quote.Quote, error) {
	var q quote.Quote
	dest := []any{
		&q.ID, &q.ClientID, &q.Items, &q.Total, &q.Status,
		&q.ValidUntil, &q.Notes, &q.CreatedDate, &q.UpdatedDate,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if q.Items == nil {
		q.Items = []quote.Item{}
	}
	return &q, nil
}

// Create implementa quote.Repository.Create
func (r *QuoteRepository) Create(ctx context.Context, q *quote.Quote) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO quotes (`+quoteColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		q.ID, q.ClientID, q.Items, q.Total, q.Status,
		q.ValidUntil, q.Notes, q.CreatedDate, q.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao criar orçamento: %w", err)
	}
	return nil
}

// FindByID implementa quote.Repository.FindByID
func (r *QuoteRepository) FindByID(ctx context.Context, id string) (*quote.Quote, error) {
	q, err := scanQuote(r.db.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quote.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar orçamento: %w", err)
	}
	return q, nil
}

// List implementa quote.Repository.List. A busca considera também o nome do cliente.
func (r *QuoteRepository) List(ctx context.Context, opts entity.ListOptions) ([]*quote.Quote, error) {
	order, err := orderBy(opts.Sort, quoteSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT q.id, q.client_id, q.items, q.total, q.status, q.valid_until,
			q.notes, q.created_date, q.updated_date, COALESCE(c.name, '')
		FROM quotes q
		LEFT JOIN clients c ON c.id::text = q.client_id`+order)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar orçamentos: %w", err)
	}
	defer rows.Close()

	quotes := make([]*quote.Quote, 0)
	for rows.Next() {
		var clientName string
		q, err := scanQuote(rows, &clientName)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler orçamento: %w", err)
		}
		if opts.Search == "" || q.Matches(clientName, opts.Search) {
			quotes = append(quotes, q)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer orçamentos: %w", err)
	}
	return quotes, nil
}

// Update implementa quote.Repository.Update
func (r *QuoteRepository) Update(ctx context.Context, q *quote.Quote) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE quotes SET
			client_id = $2, items = $3, total = $4, status = $5,
			valid_until = $6, notes = $7, updated_date = $8
		WHERE id = $1`,
		q.ID, q.ClientID, q.Items, q.Total, q.Status,
		q.ValidUntil, q.Notes, q.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao atualizar orçamento: %w", err)
	}
	return affected(tag, quote.ErrNotFound)
}

// Delete implementa quote.Repository.Delete
func (r *QuoteRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir orçamento: %w", err)
	}
	return affected(tag, quote.ErrNotFound)
}
