package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mentorhub/internal/common"
	"github.com/dmitrijs2005/mentorhub/internal/dbx"
)

// SQLiteStore implements Store over a local SQLite database using a single
// records(key, value) table. Mutations in Update run inside a transaction,
// so each caller-visible write is one atomic read-modify-write.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a SQLiteStore bound to the given database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func getValue(ctx context.Context, db dbx.DBTX, key string) ([]byte, error) {
	query := `select value from records where key=?`
	row := db.QueryRowContext(ctx, query, key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select record: %w", err)
	}
	return value, nil
}

func setValue(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	query := ` INSERT INTO records (key, value)
			values (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	if _, err := db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

// Get returns the value stored under key, or common.ErrorNotFound.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	return getValue(ctx, s.db, key)
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	return setValue(ctx, s.db, key, value)
}

// Update runs fn over the current value inside a transaction and persists
// the result. fn receives nil when the key is absent.
func (s *SQLiteStore) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		current, err := getValue(ctx, tx, key)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		return setValue(ctx, tx, key, next)
	})
}
