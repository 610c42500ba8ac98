package client

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

var (
	ErrNotFound    = errors.New("cliente não encontrado")
	ErrEmptyName   = errors.New("nome não pode ser vazio")
	ErrInvalidType = errors.New("tipo de cliente inválido")
)

// NotFoundLabel é exibido quando uma venda ou serviço referencia um cliente inexistente
const NotFoundLabel = "Cliente não encontrado"

// Type define o tipo de cliente (pessoa física ou jurídica)
type Type string

const (
	TypeIndividual Type = "individual" // Pessoa Física
	TypeBusiness   Type = "business"   // Pessoa Jurídica
)

// Label retorna o rótulo de exibição do tipo
func (t Type) Label() string {
	switch t {
	case TypeIndividual:
		return "Pessoa Física"
	case TypeBusiness:
		return "Pessoa Jurídica"
	}
	return string(t)
}

// Valid informa se o tipo é conhecido
func (t Type) Valid() bool {
	return t == TypeIndividual || t == TypeBusiness
}

// Address representa o endereço do cliente
type Address struct {
	Street     string `json:"street"`     // Logradouro
	Number     string `json:"number"`     // Número
	Complement string `json:"complement"` // Complemento
	District   string `json:"district"`   // Bairro
	City       string `json:"city"`       // Cidade
	State      string `json:"state"`      // Estado
	ZipCode    string `json:"zip_code"`   // CEP
}

// Client representa um cliente
type Client struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`       // Nome/Razão Social
	Document    string     `json:"document"`   // CPF/CNPJ
	Email       string     `json:"email"`      // Email
	Phone       string     `json:"phone"`      // Telefone
	Type        Type       `json:"type"`       // Tipo de Cliente
	BirthDate   *time.Time `json:"birth_date"` // Data de Nascimento
	Address     Address    `json:"address"`    // Endereço
	Notes       string     `json:"notes"`      // Observações
	CreatedDate time.Time  `json:"created_date"`
	UpdatedDate time.Time  `json:"updated_date"`
}

// NewClient cria um novo cliente
func NewClient(name string, clientType Type) (*Client, error) {
	if clientType == "" {
		clientType = TypeIndividual
	}

	c := &Client{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Type:        clientType,
		CreatedDate: time.Now(),
		UpdatedDate: time.Now(),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate verifica os campos obrigatórios
func (c *Client) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if !c.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

// Update atualiza os dados do cliente
func (c *Client) Update(name, document, email, phone string, clientType Type, birthDate *time.Time, address Address, notes string) error {
	c.Name = strings.TrimSpace(name)
	c.Document = document
	c.Email = email
	c.Phone = phone
	if clientType != "" {
		c.Type = clientType
	}
	c.BirthDate = birthDate
	c.Address = address
	c.Notes = notes
	c.UpdatedDate = time.Now()
	return c.Validate()
}

// Matches aplica a busca da listagem: nome sem diferenciar maiúsculas ou trecho do documento
func (c *Client) Matches(search string) bool {
	return entity.ContainsFold(c.Name, search) || strings.Contains(c.Document, search)
}

// NameOf devolve o nome do cliente no índice ou o rótulo de cliente não encontrado
func NameOf(index map[string]*Client, id string) string {
	if c, ok := index[id]; ok && c != nil {
		return c.Name
	}
	return NotFoundLabel
}
