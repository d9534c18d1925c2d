package state

import (
	"context"
	"fmt"
	"slices"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

const dashboardPerPage = 10

type dashboardState struct {
	life     lifecycle
	overview domain.SentimentOverview
	reviews  []domain.Review
	page     domain.ReviewPage
	filter   domain.DashboardFilter
}

func defaultDashboard() dashboardState {
	return dashboardState{
		filter: domain.DashboardFilter{Sentiment: domain.FilterAll},
		page:   domain.ReviewPage{Page: 1, TotalPages: 1},
	}
}

type DashboardSnapshot struct {
	Overview     domain.SentimentOverview
	Reviews      []domain.Review
	Page         int
	TotalPages   int
	TotalReviews int
	Filter       domain.DashboardFilter
	AsyncStatus
}

func (s *Store) DashboardState() DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DashboardSnapshot{
		Overview:     s.dashboard.overview,
		Reviews:      slices.Clone(s.dashboard.reviews),
		Page:         s.dashboard.page.Page,
		TotalPages:   s.dashboard.page.TotalPages,
		TotalReviews: s.dashboard.page.TotalReviews,
		Filter:       s.dashboard.filter,
		AsyncStatus:  s.dashboard.life.status(),
	}
}

// RefreshDashboard loads the overview block and the current page of
// reviews for the admin sentiment dashboard.
func (s *Store) RefreshDashboard(ctx context.Context) error {
	const op = "state.Store.RefreshDashboard"

	s.mu.Lock()
	page := s.dashboard.page.Page
	filter := s.dashboard.filter
	seq := s.dashboard.life.begin()
	s.mu.Unlock()

	overview, err := s.feed.Overview(ctx)
	var reviewPage domain.ReviewPage
	if err == nil {
		reviewPage, err = s.feed.FeedReviews(ctx, page, dashboardPerPage, filter)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.dashboard.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.dashboard.overview = overview
	s.dashboard.reviews = reviewPage.Reviews
	s.dashboard.page = reviewPage
	return nil
}

// FilterDashboardReviews re-queries from page one with the current
// filters; new filter actions always reset pagination.
func (s *Store) FilterDashboardReviews(ctx context.Context) error {
	const op = "state.Store.FilterDashboardReviews"

	s.mu.Lock()
	filter := s.dashboard.filter
	seq := s.dashboard.life.begin()
	s.mu.Unlock()

	reviewPage, err := s.feed.FeedReviews(ctx, 1, dashboardPerPage, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.dashboard.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.dashboard.reviews = reviewPage.Reviews
	s.dashboard.page = reviewPage
	return nil
}

func (s *Store) SetDashboardSentiment(sentiment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard.filter.Sentiment = sentiment
}

func (s *Store) SetDashboardSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard.filter.Search = q
}

func (s *Store) SetDashboardPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboard.page.Page = page
}
