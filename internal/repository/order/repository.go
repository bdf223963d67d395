package order

import (
	"context"

	"tulynx-storefront/internal/domain"
)

type Repository interface {
	Insert(ctx context.Context, order domain.Order) error
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)
	ListByPhone(ctx context.Context, phone string) ([]domain.Order, error)
	// CancelPending flips a pending order to cancelled. It returns
	// domain.ErrNotFound when the order does not exist and
	// domain.ErrConflict when the order exists but is past pending.
	CancelPending(ctx context.Context, orderID string) (*domain.Order, error)
}
