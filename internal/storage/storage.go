package storage

import (
	"slices"
	"sync"

	"github.com/eugenenazirov/cash-payout/internal/calculator"
)

// Storage holds the working list of entries for the current session.
type Storage interface {
	List() ([]calculator.Entry, error)
	Append(entry calculator.Entry) error
	Replace(entries []calculator.Entry) error
	Clear() error
}

// MemoryStorage keeps entries in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu      sync.RWMutex
	entries []calculator.Entry
}

// NewMemoryStorage initialises an empty working list.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// List returns a copy of the entries in insertion order.
func (s *MemoryStorage) List() ([]calculator.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return clone(s.entries), nil
}

// Append adds a single entry to the end of the list.
func (s *MemoryStorage) Append(entry calculator.Entry) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return nil
}

// Replace swaps the whole list for entries.
func (s *MemoryStorage) Replace(entries []calculator.Entry) error {
	replacement := clone(entries)

	s.mu.Lock()
	s.entries = replacement
	s.mu.Unlock()

	return nil
}

// Clear removes every entry.
func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	return nil
}

func clone(src []calculator.Entry) []calculator.Entry {
	if len(src) == 0 {
		return []calculator.Entry{}
	}
	return slices.Clone(src)
}
