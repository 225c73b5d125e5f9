package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend stores documents in a key-value table on Postgres, for
// installations that want the clinic data on a managed database instead of a
// local file.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

// NewPostgresBackend connects to databaseURL, verifies the connection and
// ensures the documents table exists.
func NewPostgresBackend(ctx context.Context, databaseURL string, maxConns, minConns int32) (*PostgresBackend, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	const ddl = `CREATE TABLE IF NOT EXISTS kv_documents (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &PostgresBackend{pool: pool}, nil
}

func (p *PostgresBackend) Get(key string) ([]byte, bool, error) {
	var value string
	err := p.pool.QueryRow(context.Background(),
		`SELECT value FROM kv_documents WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (p *PostgresBackend) Set(key string, value []byte) error {
	_, err := p.pool.Exec(context.Background(),
		`INSERT INTO kv_documents (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, string(value))
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (p *PostgresBackend) Delete(key string) error {
	_, err := p.pool.Exec(context.Background(),
		`DELETE FROM kv_documents WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (p *PostgresBackend) Close() error {
	p.pool.Close()
	return nil
}
