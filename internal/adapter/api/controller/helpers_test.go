package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hugohenrick/gestor-pme/internal/adapter/api/dto"
	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/financial"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/quote"
	"github.com/hugohenrick/gestor-pme/internal/domain/sale"
	"github.com/hugohenrick/gestor-pme/internal/domain/serviceorder"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/pkg/session"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			panic(err)
		}
	}
}

// memRepo guarda os registros em memória na ordem de criação
type memRepo[T any] struct {
	mu       sync.Mutex
	items    map[string]T
	order    []string
	id       func(T) string
	notFound error
}

func newMemRepo[T any](id func(T) string, notFound error, seed ...T) *memRepo[T] {
	r := &memRepo[T]{items: map[string]T{}, id: id, notFound: notFound}
	for _, it := range seed {
		_ = r.Create(context.Background(), it)
	}
	return r
}

func (r *memRepo[T]) Create(_ context.Context, it T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.id(it)
	if _, ok := r.items[id]; !ok {
		r.order = append(r.order, id)
	}
	r.items[id] = it
	return nil
}

func (r *memRepo[T]) FindByID(_ context.Context, id string) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		var zero T
		return zero, r.notFound
	}
	return it, nil
}

func (r *memRepo[T]) List(_ context.Context, _ entity.ListOptions) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *memRepo[T]) Update(_ context.Context, it T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.id(it)
	if _, ok := r.items[id]; !ok {
		return r.notFound
	}
	r.items[id] = it
	return nil
}

func (r *memRepo[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return r.notFound
	}
	delete(r.items, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memRepo[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type memUsers struct {
	*memRepo[*user.User]
	lastLogins []string
}

var _ user.Repository = (*memUsers)(nil)

func newMemUsers(seed ...*user.User) *memUsers {
	return &memUsers{memRepo: newMemRepo(func(u *user.User) string { return u.ID }, user.ErrNotFound, seed...)}
}

func (r *memUsers) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	all, _ := r.List(ctx, entity.ListOptions{})
	for _, u := range all {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *memUsers) UpdateLastLogin(_ context.Context, id string) error {
	r.lastLogins = append(r.lastLogins, id)
	return nil
}

type memProducts struct {
	*memRepo[*product.Product]
}

var _ product.Repository = (*memProducts)(nil)

func newMemProducts(seed ...*product.Product) *memProducts {
	return &memProducts{memRepo: newMemRepo(func(p *product.Product) string { return p.ID }, product.ErrNotFound, seed...)}
}

func (r *memProducts) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	all, _ := r.List(ctx, entity.ListOptions{})
	return product.FindByCode(all, code)
}

func newMemClients(seed ...*client.Client) *memRepo[*client.Client] {
	return newMemRepo(func(c *client.Client) string { return c.ID }, client.ErrNotFound, seed...)
}

func newMemTransactions(seed ...*financial.Transaction) *memRepo[*financial.Transaction] {
	return newMemRepo(func(t *financial.Transaction) string { return t.ID }, financial.ErrNotFound, seed...)
}

func newMemSales(seed ...*sale.Sale) *memRepo[*sale.Sale] {
	return newMemRepo(func(s *sale.Sale) string { return s.ID }, sale.ErrNotFound, seed...)
}

func newMemQuotes(seed ...*quote.Quote) *memRepo[*quote.Quote] {
	return newMemRepo(func(q *quote.Quote) string { return q.ID }, quote.ErrNotFound, seed...)
}

func newMemServiceTypes(seed ...*servicetype.ServiceType) *memRepo[*servicetype.ServiceType] {
	return newMemRepo(func(s *servicetype.ServiceType) string { return s.ID }, servicetype.ErrNotFound, seed...)
}

var (
	_ client.Repository      = (*memRepo[*client.Client])(nil)
	_ financial.Repository   = (*memRepo[*financial.Transaction])(nil)
	_ sale.Repository        = (*memRepo[*sale.Sale])(nil)
	_ quote.Repository       = (*memRepo[*quote.Quote])(nil)
	_ servicetype.Repository = (*memRepo[*servicetype.ServiceType])(nil)
)

type memServiceOrders struct {
	*memRepo[*serviceorder.ServiceOrder]
	seq int64
}

var _ serviceorder.Repository = (*memServiceOrders)(nil)

func newMemServiceOrders(seed ...*serviceorder.ServiceOrder) *memServiceOrders {
	return &memServiceOrders{memRepo: newMemRepo(func(o *serviceorder.ServiceOrder) string { return o.ID }, serviceorder.ErrNotFound, seed...)}
}

func (r *memServiceOrders) NextNumber(context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return serviceorder.FormatNumber(r.seq), nil
}

// asUser simula o middleware de autenticação com a sessão informada
func asUser(id string, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := &session.Session{UserID: id, Role: role, TokenID: "jti-" + id}
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), sess))
		c.Next()
	}
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
