package storage

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// FileSlot keeps the value in a single file that is replaced atomically on
// every save, so a crash mid-write leaves the previous snapshot intact.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) *FileSlot { return &FileSlot{path: path} }

// Path returns the backing file.
func (s *FileSlot) Path() string { return s.path }

func (s *FileSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	return data, nil
}

func (s *FileSlot) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return err
	}
	// atomic.WriteFile doesn't set permissions for new files
	return os.Chmod(s.path, 0o600)
}
