package pg

import (
	"context"
	"fmt"
	"strings"
	"time"

	"loadbench/load"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Target reads a whole PostgreSQL table on every Load.
type Target struct {
	pool  *pgxpool.Pool
	query string
}

// PoolConfig parses a postgres:// URL. A benchmark run is sequential, so
// the pool stays small.
func PoolConfig(dsn string) (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	config.MaxConns = 2
	config.MinConns = 1
	return config, nil
}

// SelectAll builds the full-scan query for a possibly schema-qualified table.
func SelectAll(table string) string {
	return "SELECT * FROM " + pgx.Identifier(strings.Split(table, ".")).Sanitize()
}

// Open connects and pings before returning, so connection setup is never
// part of a measured trial.
func Open(ctx context.Context, dsn string, opts load.Options) (*Target, error) {
	if opts.Table == "" {
		return nil, load.ErrTableRequired
	}
	config, err := PoolConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Target{pool: pool, query: SelectAll(opts.Table)}, nil
}

func (t *Target) Load(ctx context.Context) error {
	rows, err := t.pool.Query(ctx, t.query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if _, err := rows.Values(); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (t *Target) Close() error {
	t.pool.Close()
	return nil
}
