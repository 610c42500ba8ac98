package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")
	// ErrNotFound é devolvido quando o produto não existe ou a leitura do código não tem correspondência
	ErrNotFound  = errors.New("Produto não encontrado")
)

// DefaultUnit é a unidade usada quando nenhuma é informada
const DefaultUnit = "unidade"

// Dimensions reúne as medidas opcionais do produto
type Dimensions struct {
	Weight *float64 `json:"weight"` // Peso
	Volume *float64 `json:"volume"` // Volume
	Length *float64 `json:"length"` // Comprimento
	Width  *float64 `json:"width"`  // Largura
	Height *float64 `json:"height"` // Altura
}

// Product representa um produto do catálogo
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SKU         string    `json:"sku"`
	Barcode     string    `json:"barcode"`
	Price       float64   `json:"price"`
	Cost        float64   `json:"cost"`
	Stock       float64   `json:"stock"`
	Category    string    `json:"category"`
	Unit        string    `json:"unit"`
	Active      bool      `json:"active"`
	Dimensions            // medidas opcionais
	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

// NewProduct cria um novo produto
func NewProduct(name string, price float64) (*Product, error) {
	p := &Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Price:       price,
		Unit:        DefaultUnit,
		Active:      true,
		CreatedDate: time.Now(),
		UpdatedDate: time.Now(),
	}
	if p.Name == "" {
		return nil, ErrEmptyName
	}
	return p, nil
}

// Normalize aplica os padrões do formulário
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	if p.Unit == "" {
		p.Unit = DefaultUnit
	}
}

// Validate verifica os campos obrigatórios
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// Matches aplica a busca da listagem: nome, SKU e descrição sem diferenciar maiúsculas, trecho do código de barras
func (p *Product) Matches(search string) bool {
	return entity.ContainsFold(p.Name, search) ||
		entity.ContainsFold(p.SKU, search) ||
		entity.ContainsFold(p.Description, search) ||
		strings.Contains(p.Barcode, search)
}

// MatchesPOS aplica a busca do PDV: nome ou SKU sem diferenciar maiúsculas, trecho do código de barras
func (p *Product) MatchesPOS(search string) bool {
	return entity.ContainsFold(p.Name, search) ||
		entity.ContainsFold(p.SKU, search) ||
		strings.Contains(p.Barcode, search)
}

// FindByCode busca o produto cujo código de barras ou SKU é exatamente code
func FindByCode(products []*Product, code string) (*Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrNotFound
	}
	for _, p := range products {
		if p != nil && (p.Barcode == code || p.SKU == code) {
			return p, nil
		}
	}
	return nil, ErrNotFound
}
