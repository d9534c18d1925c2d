package state

import (
	"github.com/shopspring/decimal"
	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

func (s *Store) Filters() domain.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *Store) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Search = q
}

func (s *Store) SetCategoryFilter(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Category = category
}

func (s *Store) SetSentimentFilter(sentiment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Sentiment = sentiment
}

func (s *Store) SetMinRating(rating int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.MinRating = rating
}

func (s *Store) SetPriceRange(minPrice, maxPrice decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.PriceMin = minPrice
	s.filters.PriceMax = maxPrice
}

func (s *Store) SetSortBy(key domain.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SortBy = key
}

func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = domain.DefaultFilters()
}
