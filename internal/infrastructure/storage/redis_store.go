package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"metahub/pkg/circuitbreaker"
	"metahub/pkg/retry"
)

// RedisStore persists documents under prefixed Redis keys. Writes are
// retried with backoff so a transient connection blip does not surface
// as a lost update; a circuit breaker stops hammering the backend once
// it is clearly down.
type RedisStore struct {
	client   *redis.Client
	prefix   string
	retryCfg retry.Config
	breaker  *circuitbreaker.Breaker
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(address, password string, db, poolSize int, logger *zap.SugaredLogger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         address,
		Password:     password,
		DB:           db,
		PoolSize:     poolSize,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if logger != nil {
		logger.Infow("connected to Redis", "address", address, "db", db, "pool_size", poolSize)
	}

	cfg := retry.DefaultConfig()
	cfg.MaxAttempts = 2
	cfg.InitialDelay = 50 * time.Millisecond

	breaker := circuitbreaker.New(circuitbreaker.DefaultConfig())
	if logger != nil {
		breaker.OnStateChange(func(from, to circuitbreaker.State) {
			logger.Warnw("redis circuit breaker state change", "from", from, "to", to)
		})
	}

	return &RedisStore{
		client:   client,
		prefix:   "metahub:",
		retryCfg: cfg,
		breaker:  breaker,
	}, nil
}

func (s *RedisStore) storageKey(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.storageKey(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from Redis: %w", key, err)
	}
	return data, nil
}

func (s *RedisStore) Write(ctx context.Context, key string, data []byte) error {
	err := s.breaker.Execute(ctx, func() error {
		return retry.Retry(ctx, s.retryCfg, func() error {
			return s.client.Set(ctx, s.storageKey(key), data, 0).Err()
		})
	})
	if err != nil {
		return fmt.Errorf("failed to write %s to Redis: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	err := s.breaker.Execute(ctx, func() error {
		return s.client.Del(ctx, s.storageKey(key)).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s from Redis: %w", key, err)
	}
	return nil
}

// Client exposes the underlying connection for callers that need raw
// Redis features, such as distributed locks.
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

// Ping checks the backend connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the client connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
