package otp

import (
	"context"
	"sync"
	"time"

	"tulynx-storefront/internal/domain"
)

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryStore keeps codes in-process. Expired entries are both rejected on
// read and removed by a background sweep, so abandoned logins do not pile up.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
	stop    chan struct{}
	stopped sync.Once
}

// NewMemoryStore starts a store whose sweeper runs at the given interval.
// Call Close to stop the sweeper.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go s.sweep(sweepInterval)
	return s
}

func (s *MemoryStore) Put(_ context.Context, phone, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phone] = entry{code: code, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[phone]
	if !ok {
		return "", domain.ErrNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, phone)
		return "", domain.ErrNotFound
	}
	return e.code, nil
}

func (s *MemoryStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, phone)
	return nil
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() {
	s.stopped.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			now := s.now()
			for phone, e := range s.entries {
				if now.After(e.expiresAt) {
					delete(s.entries, phone)
				}
			}
			s.mu.Unlock()
		}
	}
}
