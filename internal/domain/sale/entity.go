package sale

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestor-pme/pkg/money"
)

var (
	ErrNotFound             = errors.New("venda não encontrada")
	ErrEmptyItems           = errors.New("a venda precisa de ao menos um item")
	ErrEmptyClient          = errors.New("cliente não informado")
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
	ErrInvalidStatus        = errors.New("status de venda inválido")
	ErrInvalidInstallments  = errors.New("número de parcelas deve estar entre 1 e 12")
)

// MaxInstallments é o limite de parcelas no cartão de crédito
const MaxInstallments = 12

// PaymentMethod define a forma de pagamento aceita no PDV
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "dinheiro"
	PaymentCreditCard PaymentMethod = "cartao_credito"
	PaymentDebitCard  PaymentMethod = "cartao_debito"
	PaymentPix        PaymentMethod = "pix"
)

// PaymentMethods lista as formas de pagamento na ordem exibida
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix}

// Label retorna o rótulo de exibição
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Dinheiro"
	case PaymentCreditCard:
		return "Cartão de Crédito"
	case PaymentDebitCard:
		return "Cartão de Débito"
	case PaymentPix:
		return "PIX"
	}
	return string(m)
}

// Valid informa se a forma de pagamento é conhecida
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix:
		return true
	}
	return false
}

// AllowsInstallments informa se a forma de pagamento aceita parcelamento
func (m PaymentMethod) AllowsInstallments() bool {
	return m == PaymentCreditCard
}

// Status representa o estado da venda
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid informa se o status é conhecido
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Item é uma linha da venda
type Item struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
}

// Total retorna quantidade * preço da linha
func (i Item) Total() float64 {
	return money.LineTotal(i.Quantity, i.Price)
}

// Sale representa uma venda
type Sale struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"client_id"`
	Items         []Item        `json:"items"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Installments  int           `json:"installments"`
	Status        Status        `json:"status"`
	CreatedDate   time.Time     `json:"created_date"`
	UpdatedDate   time.Time     `json:"updated_date"`
}

// ItemsTotal soma quantidade * preço dos itens
func ItemsTotal(items []Item) float64 {
	return money.SumBy(items, func(i Item) (float64, float64) { return i.Quantity, i.Price })
}

// NormalizeInstallments força 1 parcela fora do cartão de crédito
func NormalizeInstallments(method PaymentMethod, installments int) (int, error) {
	if !method.AllowsInstallments() {
		return 1, nil
	}
	if installments == 0 {
		return 1, nil
	}
	if installments < 1 || installments > MaxInstallments {
		return 0, ErrInvalidInstallments
	}
	return installments, nil
}

// NewSale cria uma venda concluída; o total é a soma dos itens
func NewSale(clientID string, items []Item, method PaymentMethod, installments int) (*Sale, error) {
	if clientID == "" {
		return nil, ErrEmptyClient
	}
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	n, err := NormalizeInstallments(method, installments)
	if err != nil {
		return nil, err
	}

	snapshot := make([]Item, len(items))
	copy(snapshot, items)

	now := time.Now()
	return &Sale{
		ID:            uuid.New().String(),
		ClientID:      clientID,
		Items:         snapshot,
		Total:         ItemsTotal(snapshot),
		PaymentMethod: method,
		Installments:  n,
		Status:        StatusCompleted,
		CreatedDate:   now,
		UpdatedDate:   now,
	}, nil
}

// Recalculate recalcula o total a partir dos itens
func (s *Sale) Recalculate() {
	s.Total = ItemsTotal(s.Items)
	s.UpdatedDate = time.Now()
}
