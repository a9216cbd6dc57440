package backup

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"metahub/internal/infrastructure/storage"
	"metahub/pkg/backup"
)

// Restorer writes a snapshot's documents back into the live store.
type Restorer struct {
	service *backup.Service
	store   storage.Store
	logger  *zap.SugaredLogger
}

// RestoreOptions controls how existing documents are treated.
type RestoreOptions struct {
	// Overwrite replaces documents that already exist in the store.
	// When false, only keys missing from the store are restored.
	Overwrite bool
}

func NewRestorer(service *backup.Service, store storage.Store, logger *zap.SugaredLogger) *Restorer {
	return &Restorer{
		service: service,
		store:   store,
		logger:  logger,
	}
}

// Restore loads the named archive and writes its entries into the store.
// It returns the number of documents written.
func (r *Restorer) Restore(ctx context.Context, name string, opts RestoreOptions) (int, error) {
	snapshot, err := r.service.Load(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to load backup %s: %w", name, err)
	}

	r.logger.Infow("starting restore",
		"backup", name,
		"entries", len(snapshot.Entries),
		"taken_at", snapshot.Timestamp,
	)

	restored := 0
	for key, data := range snapshot.Entries {
		if !opts.Overwrite {
			_, err := r.store.Read(ctx, key)
			if err == nil {
				r.logger.Debugw("skipping existing key", "key", key)
				continue
			}
			if !errors.Is(err, storage.ErrKeyNotFound) {
				return restored, err
			}
		}

		if err := r.store.Write(ctx, key, data); err != nil {
			return restored, fmt.Errorf("failed to restore key %s: %w", key, err)
		}
		restored++
	}

	r.logger.Infow("restore complete", "backup", name, "restored", restored)
	return restored, nil
}

// RestoreLatest restores the most recent archive, if any exist.
func (r *Restorer) RestoreLatest(ctx context.Context, opts RestoreOptions) (int, error) {
	names, err := r.service.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list backups: %w", err)
	}
	if len(names) == 0 {
		return 0, nil
	}
	return r.Restore(ctx, names[len(names)-1], opts)
}
