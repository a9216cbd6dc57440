package backup

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"metahub/internal/infrastructure/storage"
	"metahub/pkg/backup"
	"metahub/pkg/distributed"
)

// Scheduler periodically snapshots the persisted documents. When running
// against a shared Redis backend it takes a distributed lock first so
// only one instance writes archives.
type Scheduler struct {
	service  *backup.Service
	store    storage.Store
	keys     []string
	interval time.Duration
	keep     int
	redis    *redis.Client
	logger   *zap.SugaredLogger
	stopChan chan struct{}
}

type Config struct {
	Interval time.Duration
	Keep     int // archives retained, oldest pruned first
}

func NewScheduler(
	service *backup.Service,
	store storage.Store,
	keys []string,
	cfg Config,
	redisClient *redis.Client,
	logger *zap.SugaredLogger,
) *Scheduler {
	return &Scheduler{
		service:  service,
		store:    store,
		keys:     keys,
		interval: cfg.Interval,
		keep:     cfg.Keep,
		redis:    redisClient,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runBackup(ctx)

	for {
		select {
		case <-ticker.C:
			s.runBackup(ctx)
		case <-s.stopChan:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Scheduler) Stop() {
	close(s.stopChan)
}

func (s *Scheduler) runBackup(ctx context.Context) {
	if s.redis != nil {
		lock := distributed.NewLock(s.redis, "backup:scheduler", s.interval/2)
		acquired, err := lock.Acquire(ctx)
		if err != nil {
			s.logger.Warnw("backup lock error", "error", err)
			return
		}
		if !acquired {
			s.logger.Debug("backup already running on another instance")
			return
		}
		defer lock.Release(ctx)
	}

	snapshot, err := s.collect(ctx)
	if err != nil {
		s.logger.Errorw("failed to collect snapshot", "error", err)
		return
	}
	if len(snapshot.Entries) == 0 {
		s.logger.Debug("nothing to back up")
		return
	}

	name, err := s.service.Create(ctx, snapshot)
	if err != nil {
		s.logger.Errorw("failed to create backup", "error", err)
		return
	}

	s.logger.Infow("backup created", "name", name, "entries", len(snapshot.Entries))
	s.prune(ctx)
}

// collect reads every known storage key. Missing keys are skipped;
// collections that were never written have nothing to snapshot.
func (s *Scheduler) collect(ctx context.Context) (*backup.Snapshot, error) {
	snapshot := &backup.Snapshot{
		Entries: make(map[string]json.RawMessage, len(s.keys)),
	}

	for _, key := range s.keys {
		data, err := s.store.Read(ctx, key)
		if errors.Is(err, storage.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		snapshot.Entries[key] = json.RawMessage(data)
	}

	return snapshot, nil
}

func (s *Scheduler) prune(ctx context.Context) {
	if s.keep <= 0 {
		return
	}

	names, err := s.service.List(ctx)
	if err != nil {
		s.logger.Warnw("failed to list backups for pruning", "error", err)
		return
	}
	if len(names) <= s.keep {
		return
	}

	// Archive names embed the timestamp, so lexical order is age order.
	for _, name := range names[:len(names)-s.keep] {
		if err := s.service.Delete(ctx, name); err != nil {
			s.logger.Warnw("failed to prune backup", "name", name, "error", err)
		} else {
			s.logger.Debugw("pruned backup", "name", name)
		}
	}
}
