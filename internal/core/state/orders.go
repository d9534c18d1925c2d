package state

import (
	"context"
	"fmt"
	"slices"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

type ordersState struct {
	life       lifecycle
	items      []domain.Order
	totalCount int
	page       int
	stats      domain.OrderStats
}

type OrdersSnapshot struct {
	Items      []domain.Order
	TotalCount int
	Page       int
	Stats      domain.OrderStats
	AsyncStatus
}

func (s *Store) OrdersState() OrdersSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return OrdersSnapshot{
		Items:       slices.Clone(s.orders.items),
		TotalCount:  s.orders.totalCount,
		Page:        s.orders.page,
		Stats:       s.orders.stats,
		AsyncStatus: s.orders.life.status(),
	}
}

func (s *Store) FetchOrders(ctx context.Context, q domain.OrderQuery) error {
	const op = "state.Store.FetchOrders"

	seq := s.begin(&s.orders.life)
	page, err := s.gateway.Orders(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.orders.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.orders.items = page.Results
	s.orders.totalCount = page.Count
	return nil
}

// CreateOrder validates the draft locally before any network call.
func (s *Store) CreateOrder(ctx context.Context, d domain.OrderDraft) error {
	const op = "state.Store.CreateOrder"

	seq := s.begin(&s.orders.life)

	var (
		created domain.Order
		err     error
	)
	if err = d.Validate(); err == nil {
		created, err = s.gateway.CreateOrder(ctx, d)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.orders.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.orders.items = append([]domain.Order{created}, s.orders.items...)
	return nil
}

// UpdateOrderStatus requests a transition; the server decides whether the
// transition is legal and returns the authoritative order.
func (s *Store) UpdateOrderStatus(
	ctx context.Context, id int, status domain.OrderStatus,
) error {
	const op = "state.Store.UpdateOrderStatus"

	seq := s.begin(&s.orders.life)
	updated, err := s.gateway.UpdateOrderStatus(ctx, id, status)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.orders.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	for i := range s.orders.items {
		if s.orders.items[i].ID == updated.ID {
			s.orders.items[i] = updated
			break
		}
	}
	return nil
}

func (s *Store) FetchMyOrders(ctx context.Context) error {
	const op = "state.Store.FetchMyOrders"
	return s.fetchOrderList(ctx, op, s.gateway.MyOrders)
}

func (s *Store) FetchSellerOrders(ctx context.Context) error {
	const op = "state.Store.FetchSellerOrders"
	return s.fetchOrderList(ctx, op, s.gateway.SellerOrders)
}

func (s *Store) fetchOrderList(
	ctx context.Context,
	op string,
	fetch func(context.Context) ([]domain.Order, error),
) error {
	seq := s.begin(&s.orders.life)
	orders, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.orders.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.orders.items = orders
	return nil
}

func (s *Store) FetchOrderStats(ctx context.Context) error {
	const op = "state.Store.FetchOrderStats"

	seq := s.begin(&s.orders.life)
	stats, err := s.gateway.OrderStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.orders.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.orders.stats = stats
	return nil
}

func (s *Store) DeleteOrder(ctx context.Context, id int) error {
	const op = "state.Store.DeleteOrder"

	seq := s.begin(&s.orders.life)
	err := s.gateway.DeleteOrder(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.orders.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.orders.items = slices.DeleteFunc(s.orders.items, func(o domain.Order) bool {
		return o.ID == id
	})
	return nil
}

func (s *Store) SetOrdersPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.page = page
}

func (s *Store) ClearOrdersError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders.life.err = ""
}
