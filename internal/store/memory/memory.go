// Package memory provides an in-memory store used when no SQLite path is
// configured, and as a lightweight double in tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spendtrack/internal/core"
)

var defaultCategories = []string{"Food", "Transport", "Bills"}

// Store holds categories and spending records in process memory. Duplicate
// category names are kept as-is, matching the persistent store.
type Store struct {
	mu         sync.Mutex
	categories []string
	spendings  []core.Spending
	nextID     int64
}

// New returns a store seeded with the given categories.
func New(categories []string) *Store {
	s := &Store{nextID: 1}
	s.categories = append(s.categories, categories...)
	return s
}

// NewWithDefaults returns a store seeded with a small starter set of
// categories so the form is usable out of the box.
func NewWithDefaults() *Store {
	return New(defaultCategories)
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *Store) Create(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, name)
	return nil
}

func (s *Store) Record(ctx context.Context, sp core.Spending) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp.ID = s.nextID
	sp.RecordedAt = time.Now().UTC()
	s.nextID++
	s.spendings = append(s.spendings, sp)
	return sp.ID, nil
}

func (s *Store) Get(ctx context.Context, id int64) (core.Spending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range s.spendings {
		if sp.ID == id {
			return sp, nil
		}
	}
	return core.Spending{}, fmt.Errorf("spending %d not found", id)
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

// Spendings returns a copy of all recorded spendings, oldest first.
func (s *Store) Spendings() []core.Spending {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Spending, len(s.spendings))
	copy(out, s.spendings)
	return out
}
