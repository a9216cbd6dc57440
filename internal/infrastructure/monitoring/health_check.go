package monitoring

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"metahub/internal/core/ports"
)

// HealthChecker runs named probes against the hub's dependencies and
// aggregates their results into a single status.
type HealthChecker struct {
	mu     sync.RWMutex
	probes []probe
}

type probe struct {
	name    string
	check   func(ctx context.Context) error
	timeout time.Duration
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{}
}

func (h *HealthChecker) AddCheck(name string, check func(ctx context.Context) error, timeout time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.probes = append(h.probes, probe{name: name, check: check, timeout: timeout})
}

// AddRedisCheck probes the Redis backend with a ping.
func (h *HealthChecker) AddRedisCheck(client *redis.Client, timeout time.Duration) {
	h.AddCheck("redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}, timeout)
}

// AddRepositoryCheck verifies the build collection can be read. A
// failing storage backend surfaces here before requests hit it.
func (h *HealthChecker) AddRepositoryCheck(repo ports.BuildRepository, timeout time.Duration) {
	h.AddCheck("repository", func(ctx context.Context) error {
		_, err := repo.List(ctx)
		return err
	}, timeout)
}

// CheckAll runs every probe and reports per-check results. Any failure
// marks the overall status unhealthy.
func (h *HealthChecker) CheckAll(ctx context.Context) HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Checks:    make(map[string]string, len(h.probes)),
	}

	for _, p := range h.probes {
		probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
		err := p.check(probeCtx)
		cancel()

		if err != nil {
			status.Status = "unhealthy"
			status.Checks[p.name] = err.Error()
		} else {
			status.Checks[p.name] = "healthy"
		}
	}

	return status
}

// IsReady reports whether the service should accept traffic.
func (h *HealthChecker) IsReady(ctx context.Context) bool {
	return h.CheckAll(ctx).Status == "healthy"
}
