package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/serviceorder"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceOrderColumns = `id, number, client_id, service_type_id, description, status, scheduled_date,
	price, client_item, products, technician_notes, created_date, updated_date`

var serviceOrderSort = baseSortColumns("number", "scheduled_date", "status", "price")

// ServiceOrderRepository implementa a interface serviceorder.Repository
type ServiceOrderRepository struct {
	db *pgxpool.Pool
}

// NewServiceOrderRepository cria uma nova instância de ServiceOrderRepository
func NewServiceOrderRepository(db *pgxpool.Pool) serviceorder.Repository {
	return &ServiceOrderRepository{
		db: db,
	}
}

func scanServiceOrder(row scanner) (*serviceorder.ServiceOrder, error) {
	var o serviceorder.ServiceOrder
	err := row.Scan(
		&o.ID, &o.Number, &o.ClientID, &o.ServiceTypeID, &o.Description,
		&o.Status, &o.ScheduledDate, &o.Price, &o.ClientItem, &o.Products,
		&o.TechnicianNotes, &o.CreatedDate, &o.UpdatedDate)
	if err != nil {
		return nil, err
	}
	if o.Products == nil {
		o.Products = []serviceorder.Product{}
	}
	return &o, nil
}

// NextNumber reserva o próximo valor da sequência de ordens
func (r *ServiceOrderRepository) NextNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('service_order_number_seq')`).Scan(&seq); err != nil {
		return "", fmt.Errorf("erro ao gerar número da ordem de serviço: %w", err)
	}
	return serviceorder.FormatNumber(seq), nil
}

// Create implementa serviceorder.Repository.Create
func (r *ServiceOrderRepository) Create(ctx context.Context, o *serviceorder.ServiceOrder) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO service_orders (`+serviceOrderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID, o.Number, o.ClientID, o.ServiceTypeID, o.Description,
		o.Status, o.ScheduledDate, o.Price, o.ClientItem, o.Products,
		o.TechnicianNotes, o.CreatedDate, o.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao criar ordem de serviço: %w", err)
	}
	return nil
}

// FindByID implementa serviceorder.Repository.FindByID
func (r *ServiceOrderRepository) FindByID(ctx context.Context, id string) (*serviceorder.ServiceOrder, error) {
	o, err := scanServiceOrder(r.db.QueryRow(ctx, `SELECT `+serviceOrderColumns+` FROM service_orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceorder.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar ordem de serviço: %w", err)
	}
	return o, nil
}

// List implementa serviceorder.Repository.List
func (r *ServiceOrderRepository) List(ctx context.Context, opts entity.ListOptions) ([]*serviceorder.ServiceOrder, error) {
	order, err := orderBy(opts.Sort, serviceOrderSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+serviceOrderColumns+` FROM service_orders`+order)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ordens de serviço: %w", err)
	}
	orders, err := collect(rows, scanServiceOrder)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler ordens de serviço: %w", err)
	}
	return orders, nil
}

// Update implementa serviceorder.Repository.Update. O número da ordem não muda.
func (r *ServiceOrderRepository) Update(ctx context.Context, o *serviceorder.ServiceOrder) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE service_orders SET
			client_id = $2, service_type_id = $3, description = $4, status = $5,
			scheduled_date = $6, price = $7, client_item = $8, products = $9,
			technician_notes = $10, updated_date = $11
		WHERE id = $1`,
		o.ID, o.ClientID, o.ServiceTypeID, o.Description, o.Status,
		o.ScheduledDate, o.Price, o.ClientItem, o.Products,
		o.TechnicianNotes, o.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao atualizar ordem de serviço: %w", err)
	}
	return affected(tag, serviceorder.ErrNotFound)
}

// Delete implementa serviceorder.Repository.Delete
func (r *ServiceOrderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM service_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir ordem de serviço: %w", err)
	}
	return affected(tag, serviceorder.ErrNotFound)
}
