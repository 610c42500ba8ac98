package quote

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/pkg/money"
)

var (
	ErrNotFound        = errors.New("orçamento não encontrado")
	ErrEmptyClient     = errors.New("cliente não informado")
	ErrInvalidStatus   = errors.New("status de orçamento inválido")
	ErrInvalidItemType = errors.New("tipo de item inválido")
)

// ValidityDays é o prazo padrão de validade de um orçamento
const ValidityDays = 30

// Status representa o estado do orçamento
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusFinalized Status = "finalized"
	StatusCanceled  Status = "canceled"
)

// Statuses lista os status na ordem do menu de ações
var Statuses = []Status{StatusDraft, StatusSent, StatusApproved, StatusRejected, StatusFinalized, StatusCanceled}

// Valid informa se o status é conhecido
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusApproved, StatusRejected, StatusFinalized, StatusCanceled:
		return true
	}
	return false
}

// Label retorna o rótulo de exibição
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Rascunho"
	case StatusSent:
		return "Enviado"
	case StatusApproved:
		return "Aprovado"
	case StatusRejected:
		return "Rejeitado"
	case StatusFinalized:
		return "Finalizado"
	case StatusCanceled:
		return "Cancelado"
	}
	return string(s)
}

// ItemType define a origem do item do orçamento
type ItemType string

const (
	ItemProduct ItemType = "product"
	ItemService ItemType = "service"
	ItemCustom  ItemType = "custom"
)

// Valid informa se o tipo é conhecido
func (t ItemType) Valid() bool {
	return t == ItemProduct || t == ItemService || t == ItemCustom
}

// Item é uma linha do orçamento
type Item struct {
	ProductID     string   `json:"product_id,omitempty"`
	ServiceTypeID string   `json:"service_type_id,omitempty"`
	Description   string   `json:"description"`
	Quantity      float64  `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	Type          ItemType `json:"type"`
	Total         float64  `json:"total"`
}

// Recalculate atualiza o total da linha
func (i *Item) Recalculate() {
	i.Total = money.LineTotal(i.Quantity, i.UnitPrice)
}

// Quote representa um orçamento
type Quote struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Items       []Item    `json:"items"`
	Total       float64   `json:"total"`
	Status      Status    `json:"status"`
	ValidUntil  time.Time `json:"valid_until"`
	Notes       string    `json:"notes"`
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

// NewQuote cria um orçamento em rascunho válido por ValidityDays dias
func NewQuote(clientID string, now time.Time) (*Quote, error) {
	if clientID == "" {
		return nil, ErrEmptyClient
	}
	return &Quote{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		Items:       []Item{},
		Status:      StatusDraft,
		ValidUntil:  now.AddDate(0, 0, ValidityDays),
		CreatedDate: now,
		UpdatedDate: now,
	}, nil
}

// AddProduct adiciona uma linha de produto. O preço informado pode diferir do catálogo.
func (q *Quote) AddProduct(productID, name string, unitPrice, quantity float64) {
	q.addItem(Item{ProductID: productID, Description: name, Quantity: quantity, UnitPrice: unitPrice, Type: ItemProduct})
}

// AddServiceType adiciona uma linha de tipo de serviço
func (q *Quote) AddServiceType(serviceTypeID, name string, unitPrice, quantity float64) {
	q.addItem(Item{ServiceTypeID: serviceTypeID, Description: name, Quantity: quantity, UnitPrice: unitPrice, Type: ItemService})
}

// AddCustom adiciona um item avulso
func (q *Quote) AddCustom(description string, unitPrice, quantity float64) {
	q.addItem(Item{Description: description, Quantity: quantity, UnitPrice: unitPrice, Type: ItemCustom})
}

// addItem grava a linha como recebida; quantidade zero é mantida
func (q *Quote) addItem(it Item) {
	q.Items = append(q.Items, it)
	q.Recalculate()
}

// RemoveItem remove a linha no índice informado
func (q *Quote) RemoveItem(index int) {
	if index < 0 || index >= len(q.Items) {
		return
	}
	q.Items = append(q.Items[:index], q.Items[index+1:]...)
	q.Recalculate()
}

// Recalculate recalcula o total de cada linha e do orçamento
func (q *Quote) Recalculate() {
	for i := range q.Items {
		q.Items[i].Recalculate()
	}
	q.Total = money.SumBy(q.Items, func(i Item) (float64, float64) { return i.Quantity, i.UnitPrice })
	q.UpdatedDate = time.Now()
}

// Validate verifica cliente, status e tipos de item
func (q *Quote) Validate() error {
	if q.ClientID == "" {
		return ErrEmptyClient
	}
	if !q.Status.Valid() {
		return ErrInvalidStatus
	}
	for _, it := range q.Items {
		if !it.Type.Valid() {
			return ErrInvalidItemType
		}
	}
	return nil
}

// SetStatus altera o status. Qualquer status conhecido pode ser aplicado a partir de qualquer outro.
func (q *Quote) SetStatus(s Status) error {
	if !s.Valid() {
		return ErrInvalidStatus
	}
	q.Status = s
	q.UpdatedDate = time.Now()
	return nil
}

// Finalize marca o orçamento como finalizado
func (q *Quote) Finalize() {
	q.Status = StatusFinalized
	q.UpdatedDate = time.Now()
}

// Matches aplica a busca da listagem pelo nome do cliente, pelo id ou pelo total
func (q *Quote) Matches(clientName, search string) bool {
	return entity.ContainsFold(clientName, search) ||
		strings.Contains(q.ID, strings.ToLower(search)) ||
		strings.Contains(strconv.FormatFloat(q.Total, 'f', -1, 64), search)
}
