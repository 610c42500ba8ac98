package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceColumns = `id, client_id, service_type_id, description, scheduled_date, price, status, notes, created_date, updated_date`

var serviceSort = baseSortColumns("scheduled_date", "price", "status")

// ServiceRepository implementa a interface service.Repository
type ServiceRepository struct {
	db *pgxpool.Pool
}

// NewServiceRepository cria uma nova instância de ServiceRepository
func NewServiceRepository(db *pgxpool.Pool) service.Repository {
	return &ServiceRepository{
		db: db,
	}
}

func scanService(row scanner) (*service.Service, error) {
	var s service.Service
	err := row.Scan(
		&s.ID, &s.ClientID, &s.ServiceTypeID, &s.Description, &s.ScheduledDate,
		&s.Price, &s.Status, &s.Notes, &s.CreatedDate, &s.UpdatedDate)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create implementa service.Repository.Create
func (r *ServiceRepository) Create(ctx context.Context, s *service.Service) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO services (`+serviceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.ClientID, s.ServiceTypeID, s.Description, s.ScheduledDate,
		s.Price, s.Status, s.Notes, s.CreatedDate, s.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao agendar serviço: %w", err)
	}
	return nil
}

// FindByID implementa service.Repository.FindByID
func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*service.Service, error) {
	s, err := scanService(r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar serviço: %w", err)
	}
	return s, nil
}

// List implementa service.Repository.List
func (r *ServiceRepository) List(ctx context.Context, opts entity.ListOptions) ([]*service.Service, error) {
	order, err := orderBy(opts.Sort, serviceSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+serviceColumns+` FROM services`+order)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar serviços: %w", err)
	}
	services, err := collect(rows, scanService)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler serviços: %w", err)
	}
	return services, nil
}

// Update implementa service.Repository.Update
func (r *ServiceRepository) Update(ctx context.Context, s *service.Service) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE services SET
			client_id = $2, service_type_id = $3, description = $4, scheduled_date = $5,
			price = $6, status = $7, notes = $8, updated_date = $9
		WHERE id = $1`,
		s.ID, s.ClientID, s.ServiceTypeID, s.Description, s.ScheduledDate,
		s.Price, s.Status, s.Notes, s.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao atualizar serviço: %w", err)
	}
	return affected(tag, service.ErrNotFound)
}

// Delete implementa service.Repository.Delete
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir serviço: %w", err)
	}
	return affected(tag, service.ErrNotFound)
}
