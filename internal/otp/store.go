// Package otp holds the one-time passcode store behind phone login.
// A second Put for the same phone silently overwrites the earlier code.
package otp

import (
	"context"
	"time"
)

type Store interface {
	// Put stores the code for a phone number with the given TTL,
	// replacing any earlier code for that number.
	Put(ctx context.Context, phone, code string, ttl time.Duration) error
	// Get returns the live code for a phone number, or domain.ErrNotFound
	// when no code is stored or the stored one has expired.
	Get(ctx context.Context, phone string) (string, error)
	// Delete removes the code for a phone number; no-op when absent.
	Delete(ctx context.Context, phone string) error
}
