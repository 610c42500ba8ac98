package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/internal/pos"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type posFixture struct {
	router *gin.Engine
	sales  *memRepo[*sale.Sale]
}

func newPOSFixture(t *testing.T, operator string) posFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	products := newMemProducts(
		&product.Product{ID: "p1", Name: "Café Torrado", SKU: "CAF-01", Barcode: "7891000100103", Price: 10.5, Active: true},
		&product.Product{ID: "p2", Name: "Açúcar Cristal", SKU: "ACU-01", Barcode: "7891000200200", Price: 5, Active: true},
	)
	sales := newMemSales()
	svc := pos.NewService(pos.NewRedisCartStore(rdb, time.Hour), products, sales, logger.Nop())
	c := NewPOSController(svc, logger.Nop())

	r := gin.New()
	r.GET("/pos/payment-methods", c.PaymentMethods)
	g := r.Group("/pos")
	if operator != "" {
		g.Use(asUser(operator, user.RoleSeller))
	}
	g.GET("/cart", c.GetCart)
	g.DELETE("/cart", c.ClearCart)
	g.POST("/cart/items", c.AddItem)
	g.POST("/cart/scan", c.Scan)
	g.PUT("/cart/items/:product_id", c.UpdateQuantity)
	g.DELETE("/cart/items/:product_id", c.RemoveItem)
	g.POST("/checkout", c.Checkout)
	g.GET("/products/search", c.SearchProducts)
	return posFixture{router: r, sales: sales}
}

func TestPOSControllerCartFlow(t *testing.T) {
	f := newPOSFixture(t, "op-1")

	w := do(t, f.router, http.MethodGet, "/pos/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.CartResponse](t, w).Lines)

	require.Equal(t, http.StatusOK, do(t, f.router, http.MethodPost, "/pos/cart/scan", dto.ScanRequest{Code: "7891000100103"}).Code)
	require.Equal(t, http.StatusOK, do(t, f.router, http.MethodPost, "/pos/cart/scan", dto.ScanRequest{Code: "CAF-01"}).Code)
	w = do(t, f.router, http.MethodPost, "/pos/cart/items", dto.AddItemRequest{ProductID: "p2"})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decode[dto.CartResponse](t, w)
	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 26.0, cart.Total)
	assert.Equal(t, 3.0, cart.Count)

	w = do(t, f.router, http.MethodPut, "/pos/cart/items/p2", map[string]interface{}{"quantity": "0"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 26.0, decode[dto.CartResponse](t, w).Total)

	w = do(t, f.router, http.MethodDelete, "/pos/cart/items/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5.0, decode[dto.CartResponse](t, w).Total)

	assert.Equal(t, http.StatusUnprocessableEntity, do(t, f.router, http.MethodDelete, "/pos/cart/items/p1", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, f.router, http.MethodPost, "/pos/cart/scan", dto.ScanRequest{Code: "000"}).Code)
}

func TestPOSControllerCheckoutPreconditions(t *testing.T) {
	f := newPOSFixture(t, "op-1")

	w := do(t, f.router, http.MethodPost, "/pos/checkout", dto.CheckoutRequest{ClientID: "c1", PaymentMethod: "pix"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, pos.ErrIncompleteSale.Error(), decode[dto.ErrorResponse](t, w).Message)

	require.Equal(t, http.StatusOK, do(t, f.router, http.MethodPost, "/pos/cart/items", dto.AddItemRequest{ProductID: "p1"}).Code)

	assert.Equal(t, http.StatusUnprocessableEntity, do(t, f.router, http.MethodPost, "/pos/checkout", dto.CheckoutRequest{PaymentMethod: "pix"}).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, do(t, f.router, http.MethodPost, "/pos/checkout", dto.CheckoutRequest{ClientID: "c1"}).Code)
	assert.Equal(t, 0, f.sales.Len())

	w = do(t, f.router, http.MethodGet, "/pos/cart", nil)
	assert.Len(t, decode[dto.CartResponse](t, w).Lines, 1)
}

func TestPOSControllerCheckoutCreatesSale(t *testing.T) {
	f := newPOSFixture(t, "op-1")
	require.Equal(t, http.StatusOK, do(t, f.router, http.MethodPost, "/pos/cart/items", dto.AddItemRequest{ProductID: "p1"}).Code)

	w := do(t, f.router, http.MethodPost, "/pos/checkout", map[string]interface{}{
		"client_id":      "c1",
		"payment_method": "cartao_credito",
		"installments":   "3",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	s := decode[sale.Sale](t, w)
	assert.Equal(t, 10.5, s.Total)
	assert.Equal(t, 3, s.Installments)
	assert.Equal(t, 1, f.sales.Len())

	w = do(t, f.router, http.MethodGet, "/pos/cart", nil)
	assert.Empty(t, decode[dto.CartResponse](t, w).Lines)
}

func TestPOSControllerInstallmentsOnlyForCredit(t *testing.T) {
	f := newPOSFixture(t, "op-1")
	require.Equal(t, http.StatusOK, do(t, f.router, http.MethodPost, "/pos/cart/items", dto.AddItemRequest{ProductID: "p2"}).Code)

	w := do(t, f.router, http.MethodPost, "/pos/checkout", dto.CheckoutRequest{ClientID: "c1", PaymentMethod: "dinheiro", Installments: 6})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 1, decode[sale.Sale](t, w).Installments)
}

func TestPOSControllerRequiresSession(t *testing.T) {
	f := newPOSFixture(t, "")

	assert.Equal(t, http.StatusUnauthorized, do(t, f.router, http.MethodGet, "/pos/cart", nil).Code)
	assert.Equal(t, http.StatusOK, do(t, f.router, http.MethodGet, "/pos/payment-methods", nil).Code)
}

func TestPOSControllerSearchProducts(t *testing.T) {
	f := newPOSFixture(t, "op-1")

	w := do(t, f.router, http.MethodGet, "/pos/products/search?q=acu", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]product.Product](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}
