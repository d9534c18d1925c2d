package state

import (
	"context"
	"fmt"
	"slices"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

type categoriesState struct {
	life  lifecycle
	items []domain.Category
}

type CategoriesSnapshot struct {
	Items []domain.Category
	AsyncStatus
}

func (s *Store) CategoriesState() CategoriesSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CategoriesSnapshot{
		Items:       slices.Clone(s.categories.items),
		AsyncStatus: s.categories.life.status(),
	}
}

func (s *Store) FetchCategories(ctx context.Context) error {
	const op = "state.Store.FetchCategories"

	seq := s.begin(&s.categories.life)
	cats, err := s.gateway.Categories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.categories.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.categories.items = cats
	return nil
}

func (s *Store) CreateCategory(ctx context.Context, c domain.Category) error {
	const op = "state.Store.CreateCategory"

	seq := s.begin(&s.categories.life)
	created, err := s.gateway.CreateCategory(ctx, c)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.categories.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.categories.items = append([]domain.Category{created}, s.categories.items...)
	return nil
}

func (s *Store) ClearCategoriesError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories.life.err = ""
}
