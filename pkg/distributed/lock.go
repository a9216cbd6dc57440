package distributed

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Lock is a best-effort mutex over Redis built on SET NX with expiry.
// The random value identifies the holder, so Release never drops a lock
// some other instance has since acquired.
type Lock struct {
	client *redis.Client
	key    string
	value  string
	ttl    time.Duration
}

func NewLock(client *redis.Client, key string, ttl time.Duration) *Lock {
	raw := make([]byte, 16)
	rand.Read(raw)

	return &Lock{
		client: client,
		key:    "metahub:lock:" + key,
		value:  hex.EncodeToString(raw),
		ttl:    ttl,
	}
}

// Acquire attempts to take the lock without blocking. The lock expires
// after the TTL even if never released, so a crashed holder cannot wedge
// the system.
func (l *Lock) Acquire(ctx context.Context) (bool, error) {
	acquired, err := l.client.SetNX(ctx, l.key, l.value, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", l.key, err)
	}
	return acquired, nil
}

// releaseScript deletes the key only while we still hold it.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

func (l *Lock) Release(ctx context.Context) error {
	result, err := l.client.Eval(ctx, releaseScript, []string{l.key}, l.value).Result()
	if err != nil {
		return fmt.Errorf("failed to release lock %s: %w", l.key, err)
	}
	if count, ok := result.(int64); ok && count == 0 {
		return fmt.Errorf("lock %s was not held by this instance", l.key)
	}
	return nil
}

// Held reports whether anyone currently holds the lock.
func (l *Lock) Held(ctx context.Context) (bool, error) {
	exists, err := l.client.Exists(ctx, l.key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
