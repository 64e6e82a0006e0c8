package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jask/contactbook/internal/database"
)

// DefaultKey is the slot key used when none is configured.
const DefaultKey = "contacts"

// SQLiteSlot stores the value as one row of the slots table.
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

func NewSQLiteSlot(db *sql.DB, key string) *SQLiteSlot {
	if key == "" {
		key = DefaultKey
	}
	return &SQLiteSlot{db: db, key: key}
}

func (s *SQLiteSlot) Load(ctx context.Context) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, s.key)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	return data, nil
}

func (s *SQLiteSlot) Save(ctx context.Context, data []byte) error {
	return database.WithTx(s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO slots(key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
		 value=excluded.value,
		 updated_at=excluded.updated_at;
		`, s.key, data, database.Now())
		return err
	})
}

// UpdatedAt returns when the slot was last saved.
func (s *SQLiteSlot) UpdatedAt(ctx context.Context) (time.Time, error) {
	row := s.db.QueryRowContext(ctx, `SELECT updated_at FROM slots WHERE key = ?`, s.key)
	var ts time.Time
	if err := row.Scan(&ts); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrEmpty
		}
		return time.Time{}, err
	}
	return ts, nil
}
