package service

import (
	"context"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

// Repository define a interface para operações de repositório de serviços agendados
type Repository interface {
	Create(ctx context.Context, s *Service) error
	FindByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context, opts entity.ListOptions) ([]*Service, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id string) error
}
