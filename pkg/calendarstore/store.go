package calendarstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tripplanner/tripplanner/pkg/redis_client"
	"github.com/tripplanner/tripplanner/pkg/util"
)

var (
	ErrNotFound   = errors.New("calendar not found")
	ErrInvalidTTL = errors.New("calendar ttl must be positive")
)

const DefaultTTL = 24 * time.Hour

// Store keeps generated calendar documents behind an opaque token until their TTL passes
type Store interface {
	Put(ctx context.Context, token string, document []byte, ttl time.Duration) error
	Get(ctx context.Context, token string) ([]byte, error)
	Evict(ctx context.Context, token string) error
}

func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// TTLFromEnvironment reads TRIPPLANNER_CALENDAR_TTL
func TTLFromEnvironment() time.Duration {
	return util.GetEnvironmentDuration("TRIPPLANNER_CALENDAR_TTL", DefaultTTL)
}

// FromEnvironment uses Redis when TRIPPLANNER_REDIS_ADDRESS is set and memory otherwise
func FromEnvironment() (Store, error) {
	if !redis_client.Configured() {
		return NewMemoryStore(), nil
	}

	if err := redis_client.Connect(); err != nil {
		return nil, err
	}

	return NewRedisStore(redis_client.Client), nil
}
