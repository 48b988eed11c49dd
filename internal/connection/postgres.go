package connection

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sghaida/userdi/internal/entities"
)

// Postgres connects through a pgx pool that is created on first use.
type Postgres struct {
	descriptor string
	log        *zap.SugaredLogger

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewPostgres creates a provider for a libpq DSN or postgres:// URL.
func NewPostgres(descriptor string, log *zap.SugaredLogger) *Postgres {
	return &Postgres{descriptor: descriptor, log: log.Named("connection.postgres")}
}

// Connect opens the pool if needed and pings it.
func (p *Postgres) Connect(ctx context.Context) error {
	pool, err := p.ensurePool(ctx)
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		p.log.Errorw("ping failed", "error", err)
		return fmt.Errorf("%w: ping postgres: %w", entities.ErrConnection, err)
	}

	cfg := pool.Config().ConnConfig
	p.log.Infow("connected", "host", cfg.Host, "port", cfg.Port, "database", cfg.Database)
	return nil
}

func (p *Postgres) ensurePool(ctx context.Context) (*pgxpool.Pool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		return p.pool, nil
	}

	poolCfg, err := pgxpool.ParseConfig(p.descriptor)
	if err != nil {
		return nil, fmt.Errorf("%w: parse pool config: %w", entities.ErrConnection, err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: open pool: %w", entities.ErrConnection, err)
	}
	p.pool = pool
	return pool, nil
}

// Close releases the pool. It is safe to call more than once.
func (p *Postgres) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}
