package cart

import (
	"sync"

	"github.com/google/uuid"

	"tulynx-storefront/internal/domain"
)

// Store owns the session carts. Carts are created on demand, addressed by
// an opaque id the server hands to the client, and live for the process
// lifetime (no backing store).
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Create makes a new empty cart and returns its snapshot.
func (s *Store) Create() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &Cart{id: uuid.NewString()}
	s.carts[c.id] = c
	return c.Snapshot()
}

// Snapshot returns the observable state of one cart.
func (s *Store) Snapshot(id string) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return domain.CartSnapshot{}, domain.ErrNotFound
	}
	return c.Snapshot(), nil
}

// Apply runs one intent against a cart while holding the store lock and
// returns the resulting snapshot.
func (s *Store) Apply(id string, intent func(*Cart)) (domain.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return domain.CartSnapshot{}, domain.ErrNotFound
	}
	intent(c)
	return c.Snapshot(), nil
}
