package pos

import (
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/pkg/money"
)

// Line é uma linha do carrinho, agrupada por produto
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  float64 `json:"quantity"`
}

// Total retorna quantidade * preço da linha
func (l Line) Total() float64 {
	return money.LineTotal(l.Quantity, l.Price)
}

// Cart é o carrinho do PDV de um operador
type Cart struct {
	Lines []Line `json:"lines"`
}

// NewCart cria um carrinho vazio
func NewCart() *Cart {
	return &Cart{Lines: []Line{}}
}

func (c *Cart) indexOf(productID string) int {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add inclui uma unidade do produto; se ele já está no carrinho a quantidade é incrementada
func (c *Cart) Add(p *product.Product) {
	if p == nil {
		return
	}
	if i := c.indexOf(p.ID); i >= 0 {
		c.Lines[i].Quantity++
		return
	}
	c.Lines = append(c.Lines, Line{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1})
}

// SetQuantity altera a quantidade de uma linha. Valores menores que 1 viram 1.
func (c *Cart) SetQuantity(productID string, quantity float64) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	if quantity < 1 {
		quantity = 1
	}
	c.Lines[i].Quantity = quantity
	return true
}

// Remove retira a linha do produto
func (c *Cart) Remove(productID string) bool {
	i := c.indexOf(productID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// Total soma as linhas
func (c *Cart) Total() float64 {
	return money.SumBy(c.Lines, func(l Line) (float64, float64) { return l.Quantity, l.Price })
}

// Count retorna o total de unidades no carrinho
func (c *Cart) Count() float64 {
	var n float64
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty informa se o carrinho não tem linhas
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear esvazia o carrinho
func (c *Cart) Clear() {
	c.Lines = []Line{}
}

// Items converte as linhas em itens de venda
func (c *Cart) Items() []sale.Item {
	items := make([]sale.Item, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, sale.Item{ProductID: l.ProductID, Quantity: l.Quantity, Price: l.Price})
	}
	return items
}
