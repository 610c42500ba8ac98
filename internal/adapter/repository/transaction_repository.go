package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `id, type, description, amount, date, due_date, status, category,
	payment_method, installments, recurrence, notes, created_date, updated_date`

var transactionSort = baseSortColumns("date", "due_date", "amount", "status", "type", "description")

// TransactionRepository implementa a interface financial.Repository
type TransactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository cria uma nova instância de TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) financial.Repository {
	return &TransactionRepository{
		db: db,
	}
}

func scanTransaction(row scanner) (*financial.Transaction, error) {
	var t financial.Transaction
	err := row.Scan(
		&t.ID, &t.Type, &t.Description, &t.Amount, &t.Date, &t.DueDate,
		&t.Status, &t.Category, &t.PaymentMethod, &t.Installments,
		&t.Recurrence, &t.Notes, &t.CreatedDate, &t.UpdatedDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create implementa financial.Repository.Create
func (r *TransactionRepository) Create(ctx context.Context, t *financial.Transaction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		t.ID, t.Type, t.Description, t.Amount, t.Date, t.DueDate,
		t.Status, t.Category, t.PaymentMethod, t.Installments,
		t.Recurrence, t.Notes, t.CreatedDate, t.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao criar transação: %w", err)
	}
	return nil
}

// FindByID implementa financial.Repository.FindByID
func (r *TransactionRepository) FindByID(ctx context.Context, id string) (*financial.Transaction, error) {
	t, err := scanTransaction(r.db.QueryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, financial.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar transação: %w", err)
	}
	return t, nil
}

// List implementa financial.Repository.List
func (r *TransactionRepository) List(ctx context.Context, opts entity.ListOptions) ([]*financial.Transaction, error) {
	order, err := orderBy(opts.Sort, transactionSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+transactionColumns+` FROM transactions`+order)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações: %w", err)
	}
	txs, err := collect(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler transações: %w", err)
	}
	return txs, nil
}

// Update implementa financial.Repository.Update
func (r *TransactionRepository) Update(ctx context.Context, t *financial.Transaction) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE transactions SET
			type = $2, description = $3, amount = $4, date = $5, due_date = $6,
			status = $7, category = $8, payment_method = $9, installments = $10,
			recurrence = $11, notes = $12, updated_date = $13
		WHERE id = $1`,
		t.ID, t.Type, t.Description, t.Amount, t.Date, t.DueDate,
		t.Status, t.Category, t.PaymentMethod, t.Installments,
		t.Recurrence, t.Notes, t.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao atualizar transação: %w", err)
	}
	return affected(tag, financial.ErrNotFound)
}

// Delete implementa financial.Repository.Delete
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir transação: %w", err)
	}
	return affected(tag, financial.ErrNotFound)
}
