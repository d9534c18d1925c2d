// Package state is the client-side state container: one slice per feature,
// mutated only through command methods and read only through snapshot
// accessors. A single mutex serializes all mutations (single-writer,
// many-reader); async operations release it around the network call and
// settle through a fenced lifecycle, so a stale response can never
// overwrite newer state.
package state

import (
	"sync"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/kikuu-commerce/storefront/internal/core/port"
)

type Store struct {
	mu sync.Mutex

	gateway    port.Gateway
	sessions   port.SessionStore
	classifier port.Classifier
	feed       port.SentimentFeed

	auth       authState
	products   productsState
	categories categoriesState
	cart       cartState
	wishlist   wishlistState
	reviews    reviewsState
	orders     ordersState
	customers  customersState
	filters    domain.FilterCriteria
	sentiment  sentimentState
	dashboard  dashboardState
}

func New(
	gateway port.Gateway,
	sessions port.SessionStore,
	classifier port.Classifier,
	feed port.SentimentFeed,
) *Store {
	return &Store{
		gateway:    gateway,
		sessions:   sessions,
		classifier: classifier,
		feed:       feed,
		wishlist:   wishlistState{ids: make(map[int]struct{})},
		customers:  customersState{items: seedCustomers()},
		filters:    domain.DefaultFilters(),
		sentiment:  sentimentState{products: make(map[int]domain.SentimentCounts)},
		dashboard:  defaultDashboard(),
	}
}

// begin starts an async operation on the given slice lifecycle and returns
// the sequence number its settle must present.
func (s *Store) begin(l *lifecycle) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return l.begin()
}
