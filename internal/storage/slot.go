// Package storage provides the durable key/value slot that holds the
// serialized contact list. A slot is one named key; every save replaces its
// whole value.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jask/contactbook/internal/database"
)

var (
	// ErrEmpty is returned by Load when nothing has been saved under the key yet.
	ErrEmpty = errors.New("storage: slot is empty")
	// ErrUnknownDriver is returned by Open for an unsupported driver name.
	ErrUnknownDriver = errors.New("storage: unknown driver")
)

// Slot is a single named durable value.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Driver names accepted by Open.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Options selects and configures a slot backend.
type Options struct {
	Driver string
	// Path is the sqlite database file or the JSON file, depending on Driver.
	Path string
	// Key names the slot inside the sqlite database.
	Key string
}

// Open returns the slot described by opts and a func releasing its resources.
func Open(ctx context.Context, opts Options) (Slot, func() error, error) {
	noop := func() error { return nil }
	switch opts.Driver {
	case DriverMemory:
		return NewMemorySlot(), noop, nil
	case DriverFile:
		if err := ensureDir(opts.Path); err != nil {
			return nil, nil, err
		}
		return NewFileSlot(opts.Path), noop, nil
	case DriverSQLite, "":
		if err := ensureDir(opts.Path); err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(opts.Path); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		db, err := database.Open(opts.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open db: %w", err)
		}
		return NewSQLiteSlot(db, opts.Key), db.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
}

func ensureDir(path string) error {
	if path == "" {
		return fmt.Errorf("storage: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir storage dir: %w", err)
	}
	return nil
}

// MemorySlot keeps the value in process memory.
type MemorySlot struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

func NewMemorySlot() *MemorySlot { return &MemorySlot{} }

func (s *MemorySlot) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, ErrEmpty
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.set = true
	return nil
}
