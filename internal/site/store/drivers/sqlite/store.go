// Package sqlite backs the site's key-value storage with a local SQLite
// database: one row per named collection, the whole serialized document in a
// single column.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/growthverse/site/internal/site/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// One connection only: the store is single-writer by design and a shared
	// :memory: database exists per connection, not per DSN.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM collections WHERE name = ?`, key,
	).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, unavailable(err)
	}
	return doc, true, nil
}

func (s *Store) Set(ctx context.Context, key string, doc string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO collections (name, doc, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP
	`, key, doc)
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE name = ?`, key); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// unavailable maps a driver failure onto the store's storage-denied condition
// while keeping the underlying detail in the message.
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}
