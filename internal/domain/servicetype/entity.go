package servicetype

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

var (
	ErrNotFound  = errors.New("tipo de serviço não encontrado")
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// NotFoundLabel é exibido quando um serviço referencia um tipo inexistente
const NotFoundLabel = "Serviço não encontrado"

// ServiceType representa um tipo de serviço oferecido
type ServiceType struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	BasePrice       float64   `json:"base_price"`
	DurationMinutes *int      `json:"duration_minutes"`
	Category        string    `json:"category"`
	Active          bool      `json:"active"`
	CreatedDate     time.Time `json:"created_date"`
	UpdatedDate     time.Time `json:"updated_date"`
}

// NewServiceType cria um tipo de serviço ativo
func NewServiceType(name string, basePrice float64) (*ServiceType, error) {
	st := &ServiceType{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		BasePrice:   basePrice,
		Active:      true,
		CreatedDate: time.Now(),
		UpdatedDate: time.Now(),
	}
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return st, nil
}

// Validate verifica os campos obrigatórios
func (s *ServiceType) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// Matches aplica a busca da listagem
func (s *ServiceType) Matches(search string) bool {
	return entity.ContainsFold(s.Name, search) || entity.ContainsFold(s.Category, search)
}

// NameOf devolve o nome do tipo de serviço no índice ou o rótulo de não encontrado
func NameOf(index map[string]*ServiceType, id string) string {
	if st, ok := index[id]; ok && st != nil {
		return st.Name
	}
	return NotFoundLabel
}

// Repository define a interface para operações de repositório de tipos de serviço
type Repository interface {
	Create(ctx context.Context, s *ServiceType) error
	FindByID(ctx context.Context, id string) (*ServiceType, error)
	List(ctx context.Context, opts entity.ListOptions) ([]*ServiceType, error)
	Update(ctx context.Context, s *ServiceType) error
	Delete(ctx context.Context, id string) error
}
