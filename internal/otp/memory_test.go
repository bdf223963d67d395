package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tulynx-storefront/internal/domain"
)

func newFrozenStore() (*MemoryStore, *time.Time) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	s := &MemoryStore{
		entries: make(map[string]entry),
		now:     func() time.Time { return now },
		stop:    make(chan struct{}),
	}
	return s, &now
}

func TestMemoryPutGet(t *testing.T) {
	s, _ := newFrozenStore()
	ctx := context.Background()

	if err := s.Put(ctx, "5550001111", "123456", 5*time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}
	code, err := s.Get(ctx, "5550001111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if code != "123456" {
		t.Fatalf("expected stored code, got %q", code)
	}

	if _, err := s.Get(ctx, "5550009999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryResendOverwrites(t *testing.T) {
	s, _ := newFrozenStore()
	ctx := context.Background()

	_ = s.Put(ctx, "5550001111", "111111", 5*time.Minute)
	_ = s.Put(ctx, "5550001111", "222222", 5*time.Minute)

	code, err := s.Get(ctx, "5550001111")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if code != "222222" {
		t.Fatalf("expected second code to win, got %q", code)
	}
}

func TestMemoryExpiry(t *testing.T) {
	s, now := newFrozenStore()
	ctx := context.Background()

	_ = s.Put(ctx, "5550001111", "123456", 5*time.Minute)
	*now = now.Add(5*time.Minute + time.Second)

	if _, err := s.Get(ctx, "5550001111"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected expired code to be gone, got %v", err)
	}
}

func TestMemoryDelete(t *testing.T) {
	s, _ := newFrozenStore()
	ctx := context.Background()

	_ = s.Put(ctx, "5550001111", "123456", 5*time.Minute)
	if err := s.Delete(ctx, "5550001111"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "5550001111"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	// Deleting again is a no-op.
	if err := s.Delete(ctx, "5550001111"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestSweepRemovesExpiredEntries(t *testing.T) {
	s := NewMemoryStore(10 * time.Millisecond)
	defer s.Close()
	ctx := context.Background()

	_ = s.Put(ctx, "5550001111", "123456", time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		n := len(s.entries)
		s.mu.Unlock()
		if n == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("sweeper did not remove expired entry")
}
