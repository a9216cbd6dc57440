package storage

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// ErrKeyNotFound is returned by Read when no value has been written
// under the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store persists one opaque document per logical key.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Metrics receives storage-level failure signals. Implementations must
// tolerate concurrent calls.
type Metrics interface {
	RecordWriteFailure(key string)
}

// Slot is a typed view over a single storage key. Reads that fail for
// any reason (missing key, undecodable payload, backend error) fall back
// to the default value; writes that fail are logged and swallowed so the
// caller's in-memory state stays authoritative for the session.
type Slot[T any] struct {
	store      Store
	key        string
	defaultVal func() T
	logger     *zap.SugaredLogger
	metrics    Metrics
}

// NewSlot creates a slot for key. defaultVal is invoked on every failed
// load so callers never share a fallback value.
func NewSlot[T any](store Store, key string, defaultVal func() T, logger *zap.SugaredLogger) *Slot[T] {
	return &Slot[T]{
		store:      store,
		key:        key,
		defaultVal: defaultVal,
		logger:     logger,
	}
}

// WithMetrics attaches a write-failure recorder to the slot.
func (s *Slot[T]) WithMetrics(m Metrics) *Slot[T] {
	s.metrics = m
	return s
}

// Key returns the logical storage key.
func (s *Slot[T]) Key() string {
	return s.key
}

// Load reads and decodes the slot value. Corrupt or missing data is
// recovered locally by substituting the default.
func (s *Slot[T]) Load(ctx context.Context) T {
	data, err := s.store.Read(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) && s.logger != nil {
			s.logger.Warnw("failed to read storage key, using default",
				"key", s.key,
				"error", err,
			)
		}
		return s.defaultVal()
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		if s.logger != nil {
			s.logger.Warnw("corrupt payload under storage key, using default",
				"key", s.key,
				"error", err,
			)
		}
		return s.defaultVal()
	}
	return value
}

// Save encodes and persists the value. Failures never propagate: the
// session keeps running on its in-memory state.
func (s *Slot[T]) Save(ctx context.Context, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		if s.logger != nil {
			s.logger.Errorw("failed to marshal storage value", "key", s.key, "error", err)
		}
		return
	}

	if err := s.store.Write(ctx, s.key, data); err != nil {
		if s.logger != nil {
			s.logger.Warnw("failed to persist storage key, keeping in-memory state",
				"key", s.key,
				"error", err,
			)
		}
		if s.metrics != nil {
			s.metrics.RecordWriteFailure(s.key)
		}
	}
}

// Clear removes the stored value. Like Save, failures are logged only.
func (s *Slot[T]) Clear(ctx context.Context) {
	if err := s.store.Delete(ctx, s.key); err != nil && !errors.Is(err, ErrKeyNotFound) {
		if s.logger != nil {
			s.logger.Warnw("failed to clear storage key", "key", s.key, "error", err)
		}
	}
}
