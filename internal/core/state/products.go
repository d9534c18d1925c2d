package state

import (
	"context"
	"fmt"
	"slices"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

type productsState struct {
	life     lifecycle
	items    []domain.Product
	selected *domain.Product
}

type ProductsSnapshot struct {
	Items    []domain.Product
	Selected *domain.Product
	AsyncStatus
}

func (s *Store) ProductsState() ProductsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := ProductsSnapshot{
		Items:       slices.Clone(s.products.items),
		AsyncStatus: s.products.life.status(),
	}
	if s.products.selected != nil {
		sel := *s.products.selected
		snap.Selected = &sel
	}
	return snap
}

// VisibleProducts applies the current filter criteria and sort key to the
// fetched product list.
func (s *Store) VisibleProducts() []domain.Product {
	s.mu.Lock()
	items := slices.Clone(s.products.items)
	criteria := s.filters
	s.mu.Unlock()

	return domain.SortProducts(domain.FilterProducts(items, criteria), criteria.SortBy)
}

func (s *Store) FetchProducts(ctx context.Context) error {
	const op = "state.Store.FetchProducts"

	seq := s.begin(&s.products.life)
	page, err := s.gateway.Products(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.products.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.products.items = page.Results
	return nil
}

func (s *Store) FetchProduct(ctx context.Context, id int) error {
	const op = "state.Store.FetchProduct"

	seq := s.begin(&s.products.life)
	p, err := s.gateway.Product(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.products.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.products.selected = &p
	return nil
}

func (s *Store) CreateProduct(ctx context.Context, p domain.Product) error {
	const op = "state.Store.CreateProduct"

	seq := s.begin(&s.products.life)
	created, err := s.gateway.CreateProduct(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.products.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.products.items = append([]domain.Product{created}, s.products.items...)
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, p domain.Product) error {
	const op = "state.Store.UpdateProduct"

	seq := s.begin(&s.products.life)
	updated, err := s.gateway.UpdateProduct(ctx, p)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.products.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	for i := range s.products.items {
		if s.products.items[i].ID == updated.ID {
			s.products.items[i] = updated
			break
		}
	}
	if s.products.selected != nil && s.products.selected.ID == updated.ID {
		s.products.selected = &updated
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	const op = "state.Store.DeleteProduct"

	seq := s.begin(&s.products.life)
	err := s.gateway.DeleteProduct(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.products.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.products.items = slices.DeleteFunc(s.products.items, func(p domain.Product) bool {
		return p.ID == id
	})
	if s.products.selected != nil && s.products.selected.ID == id {
		s.products.selected = nil
	}
	return nil
}

func (s *Store) SetSelectedProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.selected = &p
}

func (s *Store) ClearSelectedProduct() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.selected = nil
}

func (s *Store) ClearProductsError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products.life.err = ""
}
