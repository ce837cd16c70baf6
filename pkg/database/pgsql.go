package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// maxQueueConns bounds the pool; the queue sees one writer and one sync job.
	maxQueueConns  = 4
	connectTimeout = 5 * time.Second
)

// NewPgxPool opens the offline queue database and checks it is reachable.
func NewPgxPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if cfg.MaxConns > maxQueueConns {
		cfg.MaxConns = maxQueueConns
	}
	if cfg.ConnConfig.ConnectTimeout == 0 {
		cfg.ConnConfig.ConnectTimeout = connectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping offline queue database: %w", err)
	}

	slog.Debug("Connected to offline queue database",
		slog.String("host", cfg.ConnConfig.Host),
		slog.Int("max_conns", int(cfg.MaxConns)),
	)
	return pool, nil
}

// ClosePgxPool closes pool. A nil pool is ignored.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	pool.Close()
	slog.Debug("Offline queue database closed")
}
