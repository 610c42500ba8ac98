//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/hugohenrick/gestor-pme/internal/domain/quote"
	"github.com/hugohenrick/gestor-pme/internal/domain/serviceorder"
	"github.com/hugohenrick/gestor-pme/internal/domain/user"
	"github.com/hugohenrick/gestor-pme/internal/infrastructure/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("gestor_test"),
		tcPostgres.WithUsername("gestor"),
		tcPostgres.WithPassword("gestor"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	url, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	_, err = database.RunMigrations(url)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepositories(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	clients := NewClientRepository(db)
	products := NewProductRepository(db)
	quotes := NewQuoteRepository(db)
	orders := NewServiceOrderRepository(db)
	users := NewUserRepository(db)

	t.Run("cliente", func(t *testing.T) {
		c, err := client.NewClient("Maria Souza", client.TypeIndividual)
		require.NoError(t, err)
		c.Address.City = "Curitiba"
		require.NoError(t, clients.Create(ctx, c))

		found, err := clients.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", found.Name)
		assert.Equal(t, "Curitiba", found.Address.City)

		list, err := clients.List(ctx, entity.NewListOptions("name", "maria"))
		require.NoError(t, err)
		require.Len(t, list, 1)

		_, err = clients.List(ctx, entity.NewListOptions("senha", ""))
		assert.ErrorIs(t, err, entity.ErrInvalidSort)
	})

	t.Run("produto por código", func(t *testing.T) {
		p, err := product.NewProduct("Café 500g", 18.9)
		require.NoError(t, err)
		p.Barcode = "7891234567890"
		p.SKU = "CAF-500"
		require.NoError(t, products.Create(ctx, p))

		byBarcode, err := products.FindByCode(ctx, "7891234567890")
		require.NoError(t, err)
		assert.Equal(t, p.ID, byBarcode.ID)

		bySKU, err := products.FindByCode(ctx, "CAF-500")
		require.NoError(t, err)
		assert.Equal(t, p.ID, bySKU.ID)

		_, err = products.FindByCode(ctx, "CAF")
		assert.ErrorIs(t, err, product.ErrNotFound)

		require.NoError(t, products.Delete(ctx, p.ID))
		assert.ErrorIs(t, products.Delete(ctx, p.ID), product.ErrNotFound)
	})

	t.Run("busca de orçamento pelo cliente", func(t *testing.T) {
		c, err := client.NewClient("Oficina Central", client.TypeBusiness)
		require.NoError(t, err)
		require.NoError(t, clients.Create(ctx, c))

		q, err := quote.NewQuote(c.ID, time.Now())
		require.NoError(t, err)
		q.AddCustom("Revisão", 150, 2)
		require.NoError(t, quotes.Create(ctx, q))

		list, err := quotes.List(ctx, entity.NewListOptions("-total", "oficina"))
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, 300.0, list[0].Total)
		require.Len(t, list[0].Items, 1)
	})

	t.Run("numeração de ordens", func(t *testing.T) {
		first, err := orders.NextNumber(ctx)
		require.NoError(t, err)
		second, err := orders.NextNumber(ctx)
		require.NoError(t, err)
		assert.Equal(t, "000001", first)
		assert.Equal(t, "000002", second)

		o, err := serviceorder.NewServiceOrder("cliente-1")
		require.NoError(t, err)
		o.Number = second
		require.NoError(t, orders.Create(ctx, o))

		found, err := orders.FindByID(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, second, found.Number)
		assert.NotNil(t, found.Products)
	})

	t.Run("usuário com email duplicado", func(t *testing.T) {
		u, err := user.NewUser("Ana Lima", "ana@empresa.com", user.RoleSeller, "segredo1")
		require.NoError(t, err)
		require.NoError(t, users.Create(ctx, u))

		dup, err := user.NewUser("Ana L.", "ANA@empresa.com", user.RoleUser, "segredo2")
		require.NoError(t, err)
		assert.ErrorIs(t, users.Create(ctx, dup), user.ErrDuplicateEmail)

		found, err := users.FindByEmail(ctx, " Ana@Empresa.com ")
		require.NoError(t, err)
		assert.True(t, found.CheckPassword("segredo1"))

		require.NoError(t, users.UpdateLastLogin(ctx, u.ID))
		found, err = users.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.NotNil(t, found.LastLoginAt)
	})
}
