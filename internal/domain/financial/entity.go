package financial

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound                = errors.New("transação não encontrada")
	ErrEmptyDescription        = errors.New("descrição não pode ser vazia")
	ErrInvalidType             = errors.New("tipo de transação inválido")
	ErrInvalidStatus           = errors.New("status de transação inválido")
	ErrInvalidCategory         = errors.New("categoria inválida para o tipo da transação")
	ErrInvalidPaymentMethod    = errors.New("forma de pagamento inválida")
	ErrInvalidRecurrence       = errors.New("recorrência inválida")
	ErrInvalidStatusTransition = errors.New("transição de status não permitida")
)

// Type define o tipo da transação
type Type string

const (
	TypeRevenue Type = "receita" // Receita
	TypeExpense Type = "despesa" // Despesa
)

// Valid informa se o tipo é conhecido
func (t Type) Valid() bool {
	return t == TypeRevenue || t == TypeExpense
}

// Label retorna o rótulo de exibição
func (t Type) Label() string {
	switch t {
	case TypeRevenue:
		return "Receita"
	case TypeExpense:
		return "Despesa"
	}
	return string(t)
}

// Category define a categoria da transação
type Category string

// Categorias de despesa
const (
	CategorySuppliers  Category = "fornecedores"
	CategoryPayroll    Category = "folha_pagamento"
	CategoryTaxes      Category = "impostos"
	CategoryRent       Category = "aluguel"
	CategoryServices   Category = "servicos"
	CategoryLoans      Category = "emprestimos"
	CategoryCreditCard Category = "cartao_credito"
	CategoryOther      Category = "outros"
)

// Categorias de receita
const (
	CategorySales       Category = "vendas"
	CategoryInvestments Category = "investimentos"
)

var (
	expenseCategories = []Category{
		CategorySuppliers, CategoryPayroll, CategoryTaxes, CategoryRent,
		CategoryServices, CategoryLoans, CategoryCreditCard, CategoryOther,
	}
	revenueCategories = []Category{CategorySales, CategoryServices, CategoryInvestments, CategoryOther}
)

// Categories retorna as categorias aceitas para o tipo
func Categories(t Type) []Category {
	switch t {
	case TypeRevenue:
		return append([]Category(nil), revenueCategories...)
	case TypeExpense:
		return append([]Category(nil), expenseCategories...)
	}
	return nil
}

// Label retorna o rótulo de exibição
func (c Category) Label() string {
	switch c {
	case CategorySuppliers:
		return "Fornecedores"
	case CategoryPayroll:
		return "Folha de Pagamento"
	case CategoryTaxes:
		return "Impostos"
	case CategoryRent:
		return "Aluguel"
	case CategoryServices:
		return "Serviços"
	case CategoryLoans:
		return "Empréstimos"
	case CategoryCreditCard:
		return "Cartão de Crédito"
	case CategoryOther:
		return "Outros"
	case CategorySales:
		return "Vendas"
	case CategoryInvestments:
		return "Investimentos"
	}
	return string(c)
}

// PaymentMethod define a forma de pagamento de uma transação
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "dinheiro"
	PaymentCreditCard PaymentMethod = "cartao_credito"
	PaymentDebitCard  PaymentMethod = "cartao_debito"
	PaymentPix        PaymentMethod = "pix"
	PaymentBoleto     PaymentMethod = "boleto"
	PaymentTransfer   PaymentMethod = "transferencia"
	PaymentCheck      PaymentMethod = "cheque"
	PaymentLoan       PaymentMethod = "emprestimo"
)

// PaymentMethods lista as formas de pagamento aceitas
var PaymentMethods = []PaymentMethod{
	PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix,
	PaymentBoleto, PaymentTransfer, PaymentCheck, PaymentLoan,
}

// Valid informa se a forma de pagamento é conhecida
func (m PaymentMethod) Valid() bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}

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
	case PaymentBoleto:
		return "Boleto"
	case PaymentTransfer:
		return "Transferência"
	case PaymentCheck:
		return "Cheque"
	case PaymentLoan:
		return "Empréstimo"
	}
	return string(m)
}

// RecurrenceType define a periodicidade de uma transação recorrente
type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceYearly  RecurrenceType = "yearly"
)

// Recurrence descreve a repetição da transação
type Recurrence struct {
	Type     RecurrenceType `json:"type"`
	Interval int            `json:"interval"`
	EndDate  *time.Time     `json:"end_date"`
}

// Normalize aplica os padrões: sem recorrência e intervalo 1
func (r *Recurrence) Normalize() {
	if r.Type == "" {
		r.Type = RecurrenceNone
	}
	if r.Interval < 1 {
		r.Interval = 1
	}
}

// Valid informa se a recorrência é conhecida
func (r Recurrence) Valid() bool {
	switch r.Type {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return r.Interval >= 1
	}
	return false
}

// Transaction representa uma transação financeira (receita ou despesa)
type Transaction struct {
	ID            string        `json:"id"`
	Type          Type          `json:"type"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	Date          time.Time     `json:"date"`
	DueDate       *time.Time    `json:"due_date"`
	Status        Status        `json:"status"`
	Category      Category      `json:"category"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Installments  int           `json:"installments"`
	Recurrence    Recurrence    `json:"recurrence"`
	Notes         string        `json:"notes"`
	CreatedDate   time.Time     `json:"created_date"`
	UpdatedDate   time.Time     `json:"updated_date"`
}

// NewTransaction cria uma transação pendente com os padrões do formulário
func NewTransaction(t Type, description string, amount float64, date time.Time) (*Transaction, error) {
	now := time.Now()
	tx := &Transaction{
		ID:          uuid.New().String(),
		Type:        t,
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Date:        date,
		Status:      StatusPending,
		CreatedDate: now,
		UpdatedDate: now,
	}
	tx.Normalize()
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// Normalize aplica os padrões de status, parcelas e recorrência
func (t *Transaction) Normalize() {
	t.Description = strings.TrimSpace(t.Description)
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Installments < 1 {
		t.Installments = 1
	}
	t.Recurrence.Normalize()
}

// Validate verifica tipo, status, categoria, forma de pagamento e recorrência
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return ErrEmptyDescription
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	if !t.Status.Valid() {
		return ErrInvalidStatus
	}
	if t.Category != "" && !t.categoryAllowed() {
		return ErrInvalidCategory
	}
	if t.PaymentMethod != "" && !t.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}
	if !t.Recurrence.Valid() {
		return ErrInvalidRecurrence
	}
	return nil
}

func (t *Transaction) categoryAllowed() bool {
	for _, c := range Categories(t.Type) {
		if c == t.Category {
			return true
		}
	}
	return false
}

// ReferenceDate é a data usada nos filtros: vencimento quando houver, senão a data
func (t *Transaction) ReferenceDate() time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return t.Date
}

// SignedAmount retorna o valor positivo para receitas e negativo para despesas
func (t *Transaction) SignedAmount() float64 {
	if t.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}

// SetStatus altera o status respeitando as transições permitidas
func (t *Transaction) SetStatus(s Status) error {
	if !s.Valid() {
		return ErrInvalidStatus
	}
	if !CanTransition(t.Status, s) {
		return ErrInvalidStatusTransition
	}
	t.Status = s
	t.UpdatedDate = time.Now()
	return nil
}
