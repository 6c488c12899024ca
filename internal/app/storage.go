package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"volunteer-dispatch/internal/config"
	"volunteer-dispatch/internal/domain"
	"volunteer-dispatch/internal/logx"
	"volunteer-dispatch/internal/repository"
	"volunteer-dispatch/internal/repository/memory"
)

// Store is the record store contract shared by the memory and postgres backends.
type Store[T any] interface {
	Create(ctx context.Context, v T) (int64, error)
	Get(ctx context.Context, id int64) (T, error)
	Find(ctx context.Context, pred func(T) bool) (*T, error)
	List(ctx context.Context, pred func(T) bool) ([]T, error)
	Update(ctx context.Context, v T) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// ClockStore persists the clock singleton.
type ClockStore interface {
	Load(ctx context.Context) (domain.ClockConfig, bool, error)
	Save(ctx context.Context, cfg domain.ClockConfig) error
}

// Stores is the selected storage backend.
type Stores struct {
	Volunteers  Store[domain.Volunteer]
	Calls       Store[domain.Call]
	Assignments Store[domain.Assignment]
	Clock       ClockStore

	pool *pgxpool.Pool
}

// Close releases the database pool, if any.
func (s *Stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func memoryStores() *Stores {
	return &Stores{
		Volunteers:  memory.NewVolunteerStore(),
		Calls:       memory.NewCallStore(),
		Assignments: memory.NewAssignmentStore(),
		Clock:       memory.NewClockConfigStore(),
	}
}

func postgresStores(pool *pgxpool.Pool) *Stores {
	return &Stores{
		Volunteers:  repository.NewVolunteerRepo(pool),
		Calls:       repository.NewCallRepo(pool),
		Assignments: repository.NewAssignmentRepo(pool),
		Clock:       repository.NewClockConfigRepo(pool),
		pool:        pool,
	}
}

func openStores(ctx context.Context, cfg *config.Config, logger logx.Logger, connect dbConnectFunc) (*Stores, error) {
	if cfg.Storage != config.StoragePostgres {
		logger.Info("using in-memory storage")
		return memoryStores(), nil
	}

	pool, err := connect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return postgresStores(pool), nil
}

var (
	newPool = repository.NewPool
	migrate = repository.Migrate
)

func connectDbWithRetry(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error) {
	var lastErr error
	const attemptTimeout = 3 * time.Second
	for i := 1; i <= retries; i++ {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		pool, err := newPool(attemptCtx, dsn)
		cancel()
		if err == nil {
			logger.Info("db connected", logx.Int("attempt", i))
			return pool, nil
		}
		lastErr = err
		logger.Warn("db connect failed", logx.Int("attempt", i), logx.Int("retries", retries), logx.Err(err))
		if i < retries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return nil, fmt.Errorf("db connect failed after %d attempts: %w", retries, lastErr)
}
