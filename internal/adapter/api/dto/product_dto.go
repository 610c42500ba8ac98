package dto

import (
	"strings"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/pkg/form"
)

// ProductRequest representa os dados de um produto.
// Preço, custo e estoque inválidos viram 0; medidas em branco ficam nulas.
type ProductRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	SKU         string             `json:"sku"`
	Barcode     string             `json:"barcode"`
	Price       form.Float         `json:"price"`
	Cost        form.Float         `json:"cost"`
	Stock       form.Float         `json:"stock"`
	Category    string             `json:"category"`
	Unit        string             `json:"unit"`
	Weight      form.OptionalFloat `json:"weight" swaggertype:"number"`
	Volume      form.OptionalFloat `json:"volume" swaggertype:"number"`
	Length      form.OptionalFloat `json:"length" swaggertype:"number"`
	Width       form.OptionalFloat `json:"width" swaggertype:"number"`
	Height      form.OptionalFloat `json:"height" swaggertype:"number"`
	Active      *bool              `json:"active"`
}

// Apply copia os campos da requisição para o produto
func (r ProductRequest) Apply(p *product.Product) {
	p.Name = r.Name
	p.Description = r.Description
	p.SKU = strings.TrimSpace(r.SKU)
	p.Barcode = strings.TrimSpace(r.Barcode)
	p.Price = r.Price.Value()
	p.Cost = r.Cost.Value()
	p.Stock = r.Stock.Value()
	p.Category = r.Category
	p.Unit = r.Unit
	p.Weight = r.Weight.Ptr()
	p.Volume = r.Volume.Ptr()
	p.Length = r.Length.Ptr()
	p.Width = r.Width.Ptr()
	p.Height = r.Height.Ptr()
	if r.Active != nil {
		p.Active = *r.Active
	}
	p.UpdatedDate = time.Now()
	p.Normalize()
}
