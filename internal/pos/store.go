package pos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix   = "pos:cart:"
	maxCartAttempts = 5
)

// ErrCartConflict é devolvido quando o carrinho mudou concorrentemente além do limite de tentativas
var ErrCartConflict = errors.New("carrinho alterado concorrentemente, tente novamente")

// CartStore persiste um carrinho por operador
type CartStore interface {
	Load(ctx context.Context, key string) (*Cart, error)
	Update(ctx context.Context, key string, fn func(*Cart) error) (*Cart, error)
	Delete(ctx context.Context, key string) error
}

// RedisCartStore guarda o carrinho como JSON no Redis com expiração
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ CartStore = (*RedisCartStore)(nil)

// NewRedisCartStore cria o store; ttl zero mantém o carrinho sem expiração
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func cartKey(key string) string {
	return cartKeyPrefix + key
}

// Load devolve o carrinho salvo ou um carrinho vazio
func (s *RedisCartStore) Load(ctx context.Context, key string) (*Cart, error) {
	return load(ctx, s.client, cartKey(key))
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func load(ctx context.Context, g getter, key string) (*Cart, error) {
	raw, err := g.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar carrinho: %w", err)
	}
	cart := NewCart()
	if err := json.Unmarshal(raw, cart); err != nil {
		return nil, fmt.Errorf("erro ao decodificar carrinho: %w", err)
	}
	if cart.Lines == nil {
		cart.Lines = []Line{}
	}
	return cart, nil
}

// Update aplica fn ao carrinho com bloqueio otimista (WATCH/MULTI)
func (s *RedisCartStore) Update(ctx context.Context, key string, fn func(*Cart) error) (*Cart, error) {
	k := cartKey(key)
	var result *Cart

	txf := func(tx *redis.Tx) error {
		cart, err := load(ctx, tx, k)
		if err != nil {
			return err
		}
		if err := fn(cart); err != nil {
			return err
		}
		raw, err := json.Marshal(cart)
		if err != nil {
			return fmt.Errorf("erro ao codificar carrinho: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, raw, s.ttl)
			return nil
		})
		if err == nil {
			result = cart
		}
		return err
	}

	for i := 0; i < maxCartAttempts; i++ {
		err := s.client.Watch(ctx, txf, k)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, ErrCartConflict
}

// Delete remove o carrinho
func (s *RedisCartStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, cartKey(key)).Err(); err != nil {
		return fmt.Errorf("erro ao remover carrinho: %w", err)
	}
	return nil
}
