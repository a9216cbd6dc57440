package repositories

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"metahub/internal/core/ports"
	"metahub/internal/infrastructure/catalog"
	"metahub/internal/infrastructure/repositories/keyed"
	"metahub/internal/infrastructure/storage"
	"metahub/pkg/config"
)

// Factory builds the keyed repositories over the configured storage
// backend, falling back to memory when a backend cannot be reached.
type Factory struct {
	store   storage.Store
	redis   *storage.RedisStore
	metrics storage.Metrics
	logger  *zap.SugaredLogger

	chatLimit         int
	notificationLimit int
}

func NewFactory(cfg *config.Config, logger *zap.SugaredLogger, metrics storage.Metrics) (*Factory, error) {
	factory := &Factory{
		metrics:           metrics,
		logger:            logger,
		chatLimit:         cfg.Chat.HistoryLimit,
		notificationLimit: cfg.Notifications.Limit,
	}

	switch cfg.Storage.Backend {
	case config.StorageRedis:
		store, err := storage.NewRedisStore(
			cfg.Redis.Address,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
			logger,
		)
		if err != nil {
			logger.Warnw("failed to connect to Redis, falling back to memory storage",
				"error", err,
			)
			factory.store = storage.NewMemoryStore()
		} else {
			factory.store = store
			factory.redis = store
			logger.Info("using Redis storage")
		}

	case config.StorageFile:
		store, err := storage.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			logger.Warnw("failed to open file storage, falling back to memory storage",
				"dir", cfg.Storage.Dir,
				"error", err,
			)
			factory.store = storage.NewMemoryStore()
		} else {
			factory.store = store
			logger.Infow("using file storage", "dir", cfg.Storage.Dir)
		}

	default:
		factory.store = storage.NewMemoryStore()
		logger.Info("using memory storage")
	}

	return factory, nil
}

// Store exposes the selected backend.
func (f *Factory) Store() storage.Store {
	return f.store
}

// RedisClient returns the raw connection when the Redis backend is
// active, nil otherwise.
func (f *Factory) RedisClient() *redis.Client {
	if f.redis == nil {
		return nil
	}
	return f.redis.Client()
}

func (f *Factory) CreateProfileRepository(ctx context.Context) ports.ProfileRepository {
	return keyed.NewProfileRepository(ctx, f.store, f.logger, f.metrics)
}

func (f *Factory) CreateBuildRepository(ctx context.Context) ports.BuildRepository {
	return keyed.NewBuildRepository(ctx, f.store, f.logger, f.metrics)
}

func (f *Factory) CreateTierListRepository(ctx context.Context) ports.TierListRepository {
	return keyed.NewTierListRepository(ctx, f.store, f.logger, f.metrics)
}

func (f *Factory) CreateChatRepository() ports.ChatRepository {
	return keyed.NewChatRepository(f.store, f.chatLimit, f.logger, f.metrics)
}

func (f *Factory) CreateNotificationRepository(ctx context.Context) ports.NotificationRepository {
	return keyed.NewNotificationRepository(ctx, f.store, f.notificationLimit, f.logger, f.metrics)
}

func (f *Factory) CreateFavoritesRepository(ctx context.Context) ports.FavoritesRepository {
	return keyed.NewFavoritesRepository(ctx, f.store, f.logger, f.metrics)
}

// CreateCatalogRepository serves the bundled static data; it does not
// touch the storage backend.
func (f *Factory) CreateCatalogRepository() ports.CatalogRepository {
	return catalog.NewStaticRepository()
}

// Close releases backend connections.
func (f *Factory) Close() error {
	if f.redis != nil {
		return f.redis.Close()
	}
	return nil
}

// HealthCheck verifies the storage backend is reachable.
func (f *Factory) HealthCheck(ctx context.Context) error {
	if f.redis != nil {
		return f.redis.Ping(ctx)
	}
	return nil
}
