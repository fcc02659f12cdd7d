package calendarstore

import (
	"context"
	"errors"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "tripplanner:calendar:"

type RedisStore struct {
	Cache *cache.Cache[string]
}

func NewRedisStore(client *redis.Client) *RedisStore {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(DefaultTTL))

	return &RedisStore{
		Cache: cache.New[string](redisStore),
	}
}

func (r *RedisStore) Put(ctx context.Context, token string, document []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	return r.Cache.Set(ctx, redisKeyPrefix+token, string(document), store.WithExpiration(ttl))
}

func (r *RedisStore) Get(ctx context.Context, token string) ([]byte, error) {
	document, err := r.Cache.Get(ctx, redisKeyPrefix+token)
	if errors.Is(err, store.NotFound{}) || errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return []byte(document), nil
}

func (r *RedisStore) Evict(ctx context.Context, token string) error {
	return r.Cache.Delete(ctx, redisKeyPrefix+token)
}
