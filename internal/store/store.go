// Package store owns the canonical, ordered contact sequence and writes the
// whole sequence to its storage slot after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/contactbook/internal/contact"
	"github.com/jask/contactbook/internal/storage"
)

// ErrIndexOutOfRange is returned when an update or delete addresses a
// position that does not exist.
var ErrIndexOutOfRange = errors.New("contact index out of range")

// Store holds contacts in order. Order is insertion order until Sort is
// called; later additions are appended without re-sorting.
type Store struct {
	slot storage.Slot
	log  *zap.Logger

	mu       sync.RWMutex
	contacts []contact.Contact
}

func New(slot storage.Slot, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{slot: slot, log: log}
}

// Load replaces the in-memory sequence with the persisted snapshot. A missing,
// unreadable or undecodable snapshot yields an empty sequence.
func (s *Store) Load(ctx context.Context) []contact.Contact {
	loaded := s.read(ctx)

	s.mu.Lock()
	s.contacts = loaded
	s.mu.Unlock()
	return s.All()
}

func (s *Store) read(ctx context.Context) []contact.Contact {
	data, err := s.slot.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrEmpty) {
			s.log.Warn("load contacts failed, starting empty", zap.Error(err))
		}
		return nil
	}
	var out []contact.Contact
	if err := json.Unmarshal(data, &out); err != nil {
		s.log.Warn("decode contacts failed, starting empty", zap.Error(err), zap.Int("bytes", len(data)))
		return nil
	}
	// rows are addressed by id, so a missing or repeated one gets a fresh id
	seen := make(map[string]struct{}, len(out))
	for i := range out {
		if _, dup := seen[out[i].ID]; dup || out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
		seen[out[i].ID] = struct{}{}
	}
	s.log.Debug("contacts loaded", zap.Int("count", len(out)))
	return out
}

// All returns a copy of the sequence.
func (s *Store) All() []contact.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.contacts)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

// At returns the contact at index.
func (s *Store) At(index int) (contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.contacts) {
		return contact.Contact{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return s.contacts[index], nil
}

// IndexOf returns the position of the contact with id, or -1.
func (s *Store) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.IndexFunc(s.contacts, func(c contact.Contact) bool { return c.ID == id })
}

// Add appends c, assigning it a fresh ID, and persists. The returned contact
// carries the ID. A persistence error leaves the contact in memory.
func (s *Store) Add(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	c.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append(s.contacts, c)
	return c, s.persist(ctx)
}

// Update replaces name, email and phone of the contact at index; its ID is kept.
func (s *Store) Update(ctx context.Context, index int, c contact.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.contacts) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	c.ID = s.contacts[index].ID
	s.contacts[index] = c
	return s.persist(ctx)
}

// Delete removes the contact at index, shifting later contacts down by one.
func (s *Store) Delete(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.contacts) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.contacts = slices.Delete(s.contacts, index, index+1)
	return s.persist(ctx)
}

// Sort stable-sorts the whole sequence with cmp and persists the new order.
func (s *Store) Sort(ctx context.Context, cmp func(a, b contact.Contact) int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	slices.SortStableFunc(s.contacts, cmp)
	return s.persist(ctx)
}

// Reset removes every contact.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = nil
	return s.persist(ctx)
}

// persist writes the full sequence. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	list := s.contacts
	if list == nil {
		list = []contact.Contact{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}
	if err := s.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("persist contacts: %w", err)
	}
	s.log.Debug("contacts persisted", zap.Int("count", len(list)), zap.Int("bytes", len(data)))
	return nil
}
