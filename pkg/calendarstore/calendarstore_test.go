package calendarstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"

func testStoreContract(t *testing.T, calendarStore Store, expire func(time.Duration)) {
	ctx := context.Background()
	token := NewToken()

	_, err := calendarStore.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, calendarStore.Put(ctx, token, []byte(document), 0), ErrInvalidTTL)

	require.NoError(t, calendarStore.Put(ctx, token, []byte(document), time.Hour))

	stored, err := calendarStore.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, document, string(stored))

	require.NoError(t, calendarStore.Evict(ctx, token))
	_, err = calendarStore.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, calendarStore.Put(ctx, token, []byte(document), time.Minute))
	expire(2 * time.Minute)

	_, err = calendarStore.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	now := time.Date(2025, 10, 18, 12, 0, 0, 0, time.UTC)

	memoryStore := NewMemoryStore()
	memoryStore.Now = func() time.Time { return now }

	testStoreContract(t, memoryStore, func(d time.Duration) { now = now.Add(d) })
}

func TestMemoryStoreSweepsOnPut(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 10, 18, 12, 0, 0, 0, time.UTC)

	memoryStore := NewMemoryStore()
	memoryStore.Now = func() time.Time { return now }

	require.NoError(t, memoryStore.Put(ctx, "a", []byte(document), time.Minute))
	require.NoError(t, memoryStore.Put(ctx, "b", []byte(document), time.Hour))
	assert.Equal(t, 2, memoryStore.Len())

	now = now.Add(10 * time.Minute)
	require.NoError(t, memoryStore.Put(ctx, "c", []byte(document), time.Hour))
	assert.Equal(t, 2, memoryStore.Len())
}

func TestMemoryStoreCopiesDocuments(t *testing.T) {
	ctx := context.Background()
	memoryStore := NewMemoryStore()

	original := []byte(document)
	require.NoError(t, memoryStore.Put(ctx, "token", original, time.Hour))
	original[0] = 'X'

	stored, err := memoryStore.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, document, string(stored))
}

func TestRedisStore(t *testing.T) {
	server := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	testStoreContract(t, NewRedisStore(client), server.FastForward)
}

func TestRedisStoreTTL(t *testing.T) {
	server := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	require.NoError(t, NewRedisStore(client).Put(context.Background(), "abc", []byte(document), 90*time.Minute))

	assert.Equal(t, 90*time.Minute, server.TTL(redisKeyPrefix+"abc"))
}

func TestFromEnvironment(t *testing.T) {
	t.Setenv("TRIPPLANNER_REDIS_ADDRESS", "")
	calendarStore, err := FromEnvironment()
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, calendarStore)

	server := miniredis.RunT(t)
	t.Setenv("TRIPPLANNER_REDIS_ADDRESS", server.Addr())
	calendarStore, err = FromEnvironment()
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, calendarStore)
}

func TestNewToken(t *testing.T) {
	first := NewToken()

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, NewToken())
}

func TestTTLFromEnvironment(t *testing.T) {
	t.Setenv("TRIPPLANNER_CALENDAR_TTL", "")
	assert.Equal(t, DefaultTTL, TTLFromEnvironment())

	t.Setenv("TRIPPLANNER_CALENDAR_TTL", "2h")
	assert.Equal(t, 2*time.Hour, TTLFromEnvironment())
}
