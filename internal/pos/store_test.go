package pos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/hugohenrick/gestor-pme/internal/domain/product"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisCartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCartStore(client, time.Hour), mr
}

func TestRedisCartStoreLoadEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	cart, err := store.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRedisCartStoreUpdatePersists(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	p := &product.Product{ID: "p1", Name: "Café", Price: 10.5}

	_, err := store.Update(ctx, "u1", func(c *Cart) error { c.Add(p); return nil })
	require.NoError(t, err)
	cart, err := store.Update(ctx, "u1", func(c *Cart) error { c.Add(p); return nil })
	require.NoError(t, err)
	assert.Equal(t, float64(2), cart.Lines[0].Quantity)

	loaded, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, cart, loaded)

	assert.True(t, mr.Exists("pos:cart:u1"))
	assert.Equal(t, time.Hour, mr.TTL("pos:cart:u1"))

	other, err := store.Load(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestRedisCartStoreUpdateErrorKeepsState(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := store.Update(ctx, "u1", func(c *Cart) error {
		c.Add(&product.Product{ID: "p1", Price: 1})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	cart, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRedisCartStoreExpiresAndDeletes(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, "u1", func(c *Cart) error { c.Add(&product.Product{ID: "p1", Price: 1}); return nil })
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)
	cart, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	_, err = store.Update(ctx, "u1", func(c *Cart) error { c.Add(&product.Product{ID: "p1", Price: 1}); return nil })
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, "u1"))
	assert.False(t, mr.Exists("pos:cart:u1"))
}
