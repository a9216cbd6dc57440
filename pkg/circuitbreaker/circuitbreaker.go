package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrOpen is returned when the breaker rejects a call without running it.
var ErrOpen = errors.New("circuit breaker open")

type State uint8

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	}
	return "unknown"
}

// Config tunes the breaker. Zero fields fall back to DefaultConfig values.
type Config struct {
	// FailureThreshold is the number of consecutive failures that trips
	// the breaker open.
	FailureThreshold int
	// Cooldown is how long the breaker stays open before letting a
	// probe call through.
	Cooldown time.Duration
	// ProbeSuccesses is the number of consecutive successful probes
	// required to close the breaker again.
	ProbeSuccesses int
}

func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		Cooldown:         15 * time.Second,
		ProbeSuccesses:   2,
	}
}

// Breaker guards calls to a flaky backend. After FailureThreshold
// consecutive failures it rejects calls outright for Cooldown, then
// admits one probe at a time until ProbeSuccesses in a row close it.
type Breaker struct {
	cfg Config

	mu        sync.Mutex
	state     State
	failures  int
	successes int
	probing   bool
	openedAt  time.Time

	onChange func(from, to State)
}

func New(cfg Config) *Breaker {
	def := DefaultConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = def.Cooldown
	}
	if cfg.ProbeSuccesses <= 0 {
		cfg.ProbeSuccesses = def.ProbeSuccesses
	}
	return &Breaker{cfg: cfg}
}

// OnStateChange registers a callback invoked on every transition. The
// callback runs on the calling goroutine and must not call back into
// the breaker.
func (b *Breaker) OnStateChange(fn func(from, to State)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = fn
}

// Execute runs op through the breaker. A rejected call returns ErrOpen
// without invoking op.
func (b *Breaker) Execute(ctx context.Context, op func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	probe, err := b.admit()
	if err != nil {
		return err
	}

	opErr := op()
	b.record(probe, opErr == nil)
	return opErr
}

// State reports the current state, promoting open to half-open once
// the cooldown has elapsed.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateOpen && time.Since(b.openedAt) >= b.cfg.Cooldown {
		b.transition(StateHalfOpen)
	}
	return b.state
}

// admit decides whether a call may proceed and whether it counts as a
// half-open probe.
func (b *Breaker) admit() (probe bool, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen {
		if time.Since(b.openedAt) < b.cfg.Cooldown {
			return false, ErrOpen
		}
		b.transition(StateHalfOpen)
	}

	if b.state == StateHalfOpen {
		// One probe in flight at a time.
		if b.probing {
			return false, ErrOpen
		}
		b.probing = true
		return true, nil
	}

	return false, nil
}

func (b *Breaker) record(probe, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if probe {
		b.probing = false
	}

	if !ok {
		b.successes = 0
		b.failures++
		if b.state == StateHalfOpen || b.failures >= b.cfg.FailureThreshold {
			b.transition(StateOpen)
		}
		return
	}

	b.failures = 0
	if b.state == StateHalfOpen {
		b.successes++
		if b.successes >= b.cfg.ProbeSuccesses {
			b.transition(StateClosed)
		}
	}
}

// transition must be called with the lock held.
func (b *Breaker) transition(to State) {
	from := b.state
	if from == to {
		return
	}
	b.state = to
	b.successes = 0
	b.probing = false
	if to == StateOpen {
		b.failures = 0
		b.openedAt = time.Now()
	}
	if b.onChange != nil {
		b.onChange(from, to)
	}
}
