package pos

import (
	"errors"

	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
)

// ErrIncompleteSale é devolvido quando falta carrinho, cliente ou forma de pagamento
var ErrIncompleteSale = errors.New("Por favor, preencha todos os campos necessários")

// Checkout reúne os dados informados na finalização
type Checkout struct {
	ClientID      string             `json:"client_id"`
	PaymentMethod sale.PaymentMethod `json:"payment_method"`
	Installments  int                `json:"installments"`
}

// Finalize monta a venda a partir do carrinho.
// Nenhuma venda é criada se alguma pré-condição falhar.
func Finalize(cart *Cart, co Checkout) (*sale.Sale, error) {
	if cart == nil || cart.IsEmpty() || co.ClientID == "" || co.PaymentMethod == "" {
		return nil, ErrIncompleteSale
	}
	return sale.NewSale(co.ClientID, cart.Items(), co.PaymentMethod, co.Installments)
}
