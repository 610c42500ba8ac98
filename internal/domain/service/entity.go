package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
)

var (
	ErrNotFound      = errors.New("serviço não encontrado")
	ErrEmptyClient   = errors.New("cliente não informado")
	ErrInvalidStatus = errors.New("status de serviço inválido")
)

// Status representa o estado do agendamento
type Status string

const (
	StatusScheduled  Status = "agendado"
	StatusInProgress Status = "em_andamento"
	StatusCompleted  Status = "concluido"
	StatusCancelled  Status = "cancelado"
)

// Valid informa se o status é conhecido
func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// View retorna rótulo e cor do status
func (s Status) View() entity.StatusView {
	switch s {
	case StatusScheduled:
		return entity.StatusView{Value: string(s), Label: "Agendado", Color: entity.ColorBlue}
	case StatusInProgress:
		return entity.StatusView{Value: string(s), Label: "Em Andamento", Color: entity.ColorYellow}
	case StatusCompleted:
		return entity.StatusView{Value: string(s), Label: "Concluído", Color: entity.ColorGreen}
	case StatusCancelled:
		return entity.StatusView{Value: string(s), Label: "Cancelado", Color: entity.ColorRed}
	}
	return entity.StatusView{Value: string(s), Label: string(s), Color: entity.ColorGray}
}

// IsOpen informa se o serviço ainda não foi concluído nem cancelado
func (s Status) IsOpen() bool {
	return s != StatusCompleted && s != StatusCancelled
}

// Service representa um serviço agendado para um cliente
type Service struct {
	ID            string     `json:"id"`
	ClientID      string     `json:"client_id"`
	ServiceTypeID string     `json:"service_type_id"`
	Description   string     `json:"description"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Price         float64    `json:"price"`
	Status        Status     `json:"status"`
	Notes         string     `json:"notes"`
	CreatedDate   time.Time  `json:"created_date"`
	UpdatedDate   time.Time  `json:"updated_date"`
}

// NewService cria um serviço agendado
func NewService(clientID string, scheduled *time.Time) (*Service, error) {
	s := &Service{
		ID:            uuid.New().String(),
		ClientID:      clientID,
		ScheduledDate: scheduled,
		Status:        StatusScheduled,
		CreatedDate:   time.Now(),
		UpdatedDate:   time.Now(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyServiceType copia nome e preço base do tipo de serviço quando ainda não preenchidos
func (s *Service) ApplyServiceType(st *servicetype.ServiceType) {
	if st == nil {
		return
	}
	s.ServiceTypeID = st.ID
	if s.Description == "" {
		s.Description = st.Name
	}
	if s.Price == 0 {
		s.Price = st.BasePrice
	}
}

// Normalize aplica o status padrão
func (s *Service) Normalize() {
	if s.Status == "" {
		s.Status = StatusScheduled
	}
}

// Validate verifica cliente e status
func (s *Service) Validate() error {
	if s.ClientID == "" {
		return ErrEmptyClient
	}
	if !s.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
