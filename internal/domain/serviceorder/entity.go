package serviceorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/hugohenrick/gestor-pme/pkg/money"
)

var (
	ErrNotFound        = errors.New("ordem de serviço não encontrada")
	ErrEmptyClient     = errors.New("cliente não informado")
	ErrInvalidStatus   = errors.New("status de ordem de serviço inválido")
	ErrInvalidSchedule = errors.New("data ou hora de agendamento inválida")
)

// Status representa o estado da ordem de serviço
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid informa se o status é conhecido
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// View retorna rótulo e cor do status
func (s Status) View() entity.StatusView {
	switch s {
	case StatusPending:
		return entity.StatusView{Value: string(s), Label: "Pendente", Color: entity.ColorBlue}
	case StatusInProgress:
		return entity.StatusView{Value: string(s), Label: "Em Andamento", Color: entity.ColorYellow}
	case StatusCompleted:
		return entity.StatusView{Value: string(s), Label: "Concluído", Color: entity.ColorGreen}
	case StatusCancelled:
		return entity.StatusView{Value: string(s), Label: "Cancelado", Color: entity.ColorRed}
	}
	return entity.StatusView{Value: string(s), Label: string(s), Color: entity.ColorGray}
}

// ClientItem descreve o equipamento do cliente deixado para o serviço
type ClientItem struct {
	Type         string `json:"type"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Condition    string `json:"condition"`
}

// Product é uma peça ou produto utilizado na ordem
type Product struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

// ServiceOrder representa uma ordem de serviço
type ServiceOrder struct {
	ID              string     `json:"id"`
	Number          string     `json:"number"`
	ClientID        string     `json:"client_id"`
	ServiceTypeID   string     `json:"service_type_id"`
	Description     string     `json:"description"`
	Status          Status     `json:"status"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	Price           float64    `json:"price"`
	ClientItem      ClientItem `json:"client_item"`
	Products        []Product  `json:"products"`
	TechnicianNotes string     `json:"technician_notes"`
	CreatedDate     time.Time  `json:"created_date"`
	UpdatedDate     time.Time  `json:"updated_date"`
}

// NewServiceOrder cria uma ordem pendente sem produtos
func NewServiceOrder(clientID string) (*ServiceOrder, error) {
	o := &ServiceOrder{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		Status:      StatusPending,
		Products:    []Product{},
		CreatedDate: time.Now(),
		UpdatedDate: time.Now(),
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Normalize aplica os padrões do formulário
func (o *ServiceOrder) Normalize() {
	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.Products == nil {
		o.Products = []Product{}
	}
}

// Validate verifica cliente e status
func (o *ServiceOrder) Validate() error {
	if o.ClientID == "" {
		return ErrEmptyClient
	}
	if !o.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// ApplyServiceType define descrição e preço a partir do tipo de serviço escolhido
func (o *ServiceOrder) ApplyServiceType(st *servicetype.ServiceType) {
	if st == nil {
		return
	}
	o.ServiceTypeID = st.ID
	o.Description = st.Name
	o.Price = st.BasePrice
}

// AddProduct adiciona um produto ao preço informado. Quantidade menor que 1 vira 1.
func (o *ServiceOrder) AddProduct(productID string, price, quantity float64) {
	if quantity <= 0 {
		quantity = 1
	}
	o.Products = append(o.Products, Product{ProductID: productID, Quantity: quantity, Price: price})
}

// ProductsTotal soma quantidade * preço dos produtos
func (o *ServiceOrder) ProductsTotal() float64 {
	return money.SumBy(o.Products, func(p Product) (float64, float64) { return p.Quantity, p.Price })
}

// Total soma o preço do serviço e dos produtos
func (o *ServiceOrder) Total() float64 {
	return money.Add(o.Price, o.ProductsTotal())
}

// Title é o título exibido no calendário
func (o *ServiceOrder) Title() string {
	if o.Number != "" {
		return "OS " + o.Number
	}
	return o.Description
}

// CombineSchedule monta a data agendada a partir de data (yyyy-MM-dd) e hora (HH:mm), como date+"T"+time
func CombineSchedule(date, clock string, loc *time.Location) (*time.Time, error) {
	if date == "" {
		return nil, nil
	}
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+clock, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	return &t, nil
}

// FormatNumber formata o número sequencial da ordem
func FormatNumber(seq int64) string {
	return fmt.Sprintf("%06d", seq)
}

// Repository define a interface para operações de repositório de ordens de serviço
type Repository interface {
	Create(ctx context.Context, o *ServiceOrder) error
	FindByID(ctx context.Context, id string) (*ServiceOrder, error)
	List(ctx context.Context, opts entity.ListOptions) ([]*ServiceOrder, error)
	Update(ctx context.Context, o *ServiceOrder) error
	Delete(ctx context.Context, id string) error
	// NextNumber reserva o próximo número sequencial
	NextNumber(ctx context.Context) (string, error)
}
