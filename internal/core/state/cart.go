package state

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

type cartState struct {
	life  lifecycle
	items []domain.CartItem
	total decimal.Decimal
	open  bool
}

type CartSnapshot struct {
	Items []domain.CartItem
	Total decimal.Decimal
	Open  bool
	AsyncStatus
}

func (s *Store) CartState() CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartSnapshot{
		Items:       slices.Clone(s.cart.items),
		Total:       s.cart.total,
		Open:        s.cart.open,
		AsyncStatus: s.cart.life.status(),
	}
}

func (s *Store) FetchCartItems(ctx context.Context) error {
	const op = "state.Store.FetchCartItems"

	seq := s.begin(&s.cart.life)
	items, err := s.gateway.CartItems(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.cart.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.cart.items = items
	s.cart.total = domain.CartTotal(items)
	return nil
}

// AddToCart requests a server-side cart addition. State changes only after
// acknowledgement and only via a following fetch; no optimistic update.
func (s *Store) AddToCart(ctx context.Context, productID, quantity int) error {
	const op = "state.Store.AddToCart"

	seq := s.begin(&s.cart.life)

	var err error
	if quantity <= 0 {
		err = fmt.Errorf("%w: quantity must be positive", domain.ErrInvalid)
	} else {
		err = s.gateway.AddToCart(ctx, productID, quantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Store) UpdateCartQuantity(ctx context.Context, itemID, quantity int) error {
	const op = "state.Store.UpdateCartQuantity"

	seq := s.begin(&s.cart.life)
	err := s.gateway.UpdateCartQuantity(ctx, itemID, quantity)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RemoveFromCart drops the item locally after acknowledgement and
// recomputes the total from the remaining server-computed subtotals.
func (s *Store) RemoveFromCart(ctx context.Context, itemID int) error {
	const op = "state.Store.RemoveFromCart"

	seq := s.begin(&s.cart.life)
	err := s.gateway.RemoveFromCart(ctx, itemID)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.cart.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.cart.items = slices.DeleteFunc(s.cart.items, func(it domain.CartItem) bool {
		return it.ID == itemID
	})
	s.cart.total = domain.CartTotal(s.cart.items)
	return nil
}

func (s *Store) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.open = !s.cart.open
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.items = nil
	s.cart.total = decimal.Zero
}

func (s *Store) ClearCartError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.life.err = ""
}
