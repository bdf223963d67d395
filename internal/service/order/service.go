package order

import (
	"context"
	"errors"
	"sort"
	"strings"

	"tulynx-storefront/internal/domain"
	orderrepo "tulynx-storefront/internal/repository/order"
)

// ErrForbidden is returned when an order exists but belongs to a different
// phone number than the authenticated one.
var ErrForbidden = errors.New("order belongs to another customer")

// ListQuery narrows and orders a customer's order history. Zero values mean
// no filtering; SortBy defaults to date, SortOrder to desc.
type ListQuery struct {
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}

const (
	SortByDate  = "date"
	SortByTotal = "total"
)

// Service exposes a customer's order history on top of the order repository.
type Service struct {
	orders orderrepo.Repository
}

func New(orders orderrepo.Repository) *Service {
	return &Service{orders: orders}
}

// List returns the customer's orders filtered and sorted per the query.
func (s *Service) List(ctx context.Context, phone string, q ListQuery) ([]domain.Order, error) {
	orders, err := s.orders.ListByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}

	filtered := orders[:0:0]
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, o := range orders {
		if q.Status != "" && o.Status != q.Status {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		filtered = append(filtered, o)
	}

	sortOrders(filtered, q.SortBy, q.SortOrder)
	return filtered, nil
}

// Get returns a single order after checking it belongs to the phone number.
func (s *Service) Get(ctx context.Context, phone, orderID string) (*domain.Order, error) {
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Customer.Phone != phone {
		return nil, ErrForbidden
	}
	return o, nil
}

// Cancel cancels a pending order owned by the phone number. A non-pending
// order fails with domain.ErrConflict.
func (s *Service) Cancel(ctx context.Context, phone, orderID string) (*domain.Order, error) {
	if _, err := s.Get(ctx, phone, orderID); err != nil {
		return nil, err
	}
	o, err := s.orders.CancelPending(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func matchesSearch(o domain.Order, search string) bool {
	if strings.Contains(strings.ToLower(o.OrderID), search) {
		return true
	}
	for _, line := range o.Lines {
		if strings.Contains(strings.ToLower(line.Name), search) {
			return true
		}
	}
	return false
}

func sortOrders(orders []domain.Order, by, order string) {
	asc := order == "asc"
	less := func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) }
	if by == SortByTotal {
		less = func(i, j int) bool {
			if orders[i].TotalCents != orders[j].TotalCents {
				return orders[i].TotalCents < orders[j].TotalCents
			}
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if asc {
			return less(i, j)
		}
		return less(j, i)
	})
}
