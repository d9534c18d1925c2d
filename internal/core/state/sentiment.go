package state

import (
	"maps"
	"slices"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

// sentimentState holds per-product sentiment data and the trend series for
// sentiment views outside the admin dashboard. It is fed synchronously by
// whoever fetched the data; the slice itself performs no I/O.
type sentimentState struct {
	life     lifecycle
	products map[int]domain.SentimentCounts
	trends   []domain.SentimentTrend
	overview domain.SentimentOverview
}

type SentimentSnapshot struct {
	Products map[int]domain.SentimentCounts
	Trends   []domain.SentimentTrend
	Overview domain.SentimentOverview
	AsyncStatus
}

func (s *Store) SentimentState() SentimentSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SentimentSnapshot{
		Products:    maps.Clone(s.sentiment.products),
		Trends:      slices.Clone(s.sentiment.trends),
		Overview:    s.sentiment.overview,
		AsyncStatus: s.sentiment.life.status(),
	}
}

// SetProductSentiment records the sentiment tally for one product.
func (s *Store) SetProductSentiment(productID int, c domain.SentimentCounts) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentiment.products[productID] = c
}

func (s *Store) ProductSentiment(productID int) (domain.SentimentCounts, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.sentiment.products[productID]
	return c, ok
}

func (s *Store) SetSentimentTrends(trends []domain.SentimentTrend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentiment.trends = slices.Clone(trends)
}

func (s *Store) SetSentimentOverview(ov domain.SentimentOverview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentiment.overview = ov
}

func (s *Store) SetSentimentLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentiment.life.loading = loading
}

func (s *Store) ClearSentimentError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentiment.life.err = ""
}
