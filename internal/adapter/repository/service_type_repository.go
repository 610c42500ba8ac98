package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceTypeColumns = `id, name, description, base_price, duration_minutes, category, active, created_date, updated_date`

var serviceTypeSort = baseSortColumns("name", "base_price", "category")

// ServiceTypeRepository implementa a interface servicetype.Repository
type ServiceTypeRepository struct {
	db *pgxpool.Pool
}

// NewServiceTypeRepository cria uma nova instância de ServiceTypeRepository
func NewServiceTypeRepository(db *pgxpool.Pool) servicetype.Repository {
	return &ServiceTypeRepository{
		db: db,
	}
}

func scanServiceType(row scanner) (*servicetype.ServiceType, error) {
	var s servicetype.ServiceType
	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.BasePrice, &s.DurationMinutes,
		&s.Category, &s.Active, &s.CreatedDate, &s.UpdatedDate)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create implementa servicetype.Repository.Create
func (r *ServiceTypeRepository) Create(ctx context.Context, s *servicetype.ServiceType) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO service_types (`+serviceTypeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Name, s.Description, s.BasePrice, s.DurationMinutes,
		s.Category, s.Active, s.CreatedDate, s.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao criar tipo de serviço: %w", err)
	}
	return nil
}

// FindByID implementa servicetype.Repository.FindByID
func (r *ServiceTypeRepository) FindByID(ctx context.Context, id string) (*servicetype.ServiceType, error) {
	s, err := scanServiceType(r.db.QueryRow(ctx, `SELECT `+serviceTypeColumns+` FROM service_types WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, servicetype.ErrNotFound
		}
		return nil, fmt.Errorf("erro ao buscar tipo de serviço: %w", err)
	}
	return s, nil
}

// List implementa servicetype.Repository.List
func (r *ServiceTypeRepository) List(ctx context.Context, opts entity.ListOptions) ([]*servicetype.ServiceType, error) {
	order, err := orderBy(opts.Sort, serviceTypeSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT `+serviceTypeColumns+` FROM service_types`+order)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tipos de serviço: %w", err)
	}
	types, err := collect(rows, scanServiceType)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler tipos de serviço: %w", err)
	}
	return entity.Filter(types, opts.Search, (*servicetype.ServiceType).Matches), nil
}

// Update implementa servicetype.Repository.Update
func (r *ServiceTypeRepository) Update(ctx context.Context, s *servicetype.ServiceType) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE service_types SET
			name = $2, description = $3, base_price = $4, duration_minutes = $5,
			category = $6, active = $7, updated_date = $8
		WHERE id = $1`,
		s.ID, s.Name, s.Description, s.BasePrice, s.DurationMinutes,
		s.Category, s.Active, s.UpdatedDate)
	if err != nil {
		return fmt.Errorf("erro ao atualizar tipo de serviço: %w", err)
	}
	return affected(tag, servicetype.ErrNotFound)
}

// Delete implementa servicetype.Repository.Delete
func (r *ServiceTypeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM service_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir tipo de serviço: %w", err)
	}
	return affected(tag, servicetype.ErrNotFound)
}
