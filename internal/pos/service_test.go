package pos

import (
	"context"
	"errors"
	"testing"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducts struct {
	items []*product.Product
}

var _ product.Repository = (*stubProducts)(nil)

func (s *stubProducts) Create(_ context.Context, p *product.Product) error {
	s.items = append(s.items, p)
	return nil
}

func (s *stubProducts) FindByID(_ context.Context, id string) (*product.Product, error) {
	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, product.ErrNotFound
}

func (s *stubProducts) FindByCode(_ context.Context, code string) (*product.Product, error) {
	return product.FindByCode(s.items, code)
}

func (s *stubProducts) List(_ context.Context, _ entity.ListOptions) ([]*product.Product, error) {
	return s.items, nil
}

func (s *stubProducts) Update(_ context.Context, _ *product.Product) error { return nil }
func (s *stubProducts) Delete(_ context.Context, _ string) error { return nil }

type stubSales struct {
	created []*sale.Sale
	err     error
}

var _ sale.Repository = (*stubSales)(nil)

func (s *stubSales) Create(_ context.Context, sl *sale.Sale) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, sl)
	return nil
}

func (s *stubSales) FindByID(_ context.Context, _ string) (*sale.Sale, error) {
	return nil, sale.ErrNotFound
}

func (s *stubSales) List(_ context.Context, _ entity.ListOptions) ([]*sale.Sale, error) {
	return s.created, nil
}

func (s *stubSales) Update(_ context.Context, _ *sale.Sale) error { return nil }

func newTestService(t *testing.T) (*Service, *stubSales) {
	t.Helper()
	store, _ := newTestStore(t)
	products := &stubProducts{items: []*product.Product{
		{ID: "p1", Name: "Café Torrado", SKU: "CAF-01", Barcode: "7891000100103", Price: 10.5},
		{ID: "p2", Name: "Açúcar", SKU: "ACU-01", Barcode: "7891000200200", Price: 5},
	}}
	sales := &stubSales{}
	return NewService(store, products, sales, logger.Nop()), sales
}

func TestServiceScanAndFinalize(t *testing.T) {
	svc, sales := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddByCode(ctx, "op", "7891000100103")
	require.NoError(t, err)
	_, err = svc.AddByCode(ctx, "op", "CAF-01")
	require.NoError(t, err)
	cart, err := svc.AddProduct(ctx, "op", "p2")
	require.NoError(t, err)
	assert.Equal(t, 26.0, cart.Total())

	s, err := svc.FinalizeSale(ctx, "op", Checkout{ClientID: "c1", PaymentMethod: sale.PaymentPix})
	require.NoError(t, err)
	assert.Equal(t, 26.0, s.Total)
	require.Len(t, sales.created, 1)

	cart, err = svc.GetCart(ctx, "op")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestServiceScanUnknownCode(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddByCode(context.Background(), "op", "000")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestServiceFinalizeIncompleteKeepsCart(t *testing.T) {
	svc, sales := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, "op", "p1")
	require.NoError(t, err)

	_, err = svc.FinalizeSale(ctx, "op", Checkout{PaymentMethod: sale.PaymentPix})
	assert.ErrorIs(t, err, ErrIncompleteSale)
	assert.Empty(t, sales.created)

	cart, err := svc.GetCart(ctx, "op")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestServiceFinalizeRepositoryFailureKeepsCart(t *testing.T) {
	svc, sales := newTestService(t)
	sales.err = errors.New("db fora")
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, "op", "p1")
	require.NoError(t, err)

	_, err = svc.FinalizeSale(ctx, "op", Checkout{ClientID: "c1", PaymentMethod: sale.PaymentCash})
	assert.Error(t, err)

	cart, err := svc.GetCart(ctx, "op")
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
}

func TestServiceUpdateAndRemove(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, "op", "p1")
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, "op", "p1", 3)
	require.NoError(t, err)
	assert.Equal(t, 31.5, cart.Total())

	_, err = svc.UpdateQuantity(ctx, "op", "p2", 3)
	assert.ErrorIs(t, err, ErrItemNotInCart)

	cart, err = svc.RemoveItem(ctx, "op", "p1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestServiceSearchProducts(t *testing.T) {
	svc, _ := newTestService(t)

	found, err := svc.SearchProducts(context.Background(), "caf")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "p1", found[0].ID)

	found, err = svc.SearchProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
