package state

import (
	"context"
	"errors"
	"testing"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("Fulfilled", func(t *testing.T) {
		s, _, feed := newTestStore(new(gatewayMock), new(sessionStoreMock))
		feed.overview = domain.SentimentOverview{
			TotalReviews:     20,
			AverageSentiment: 0.65,
			Distribution:     domain.SentimentCounts{Positive: 13, Negative: 4, Neutral: 3},
		}
		feed.page = domain.ReviewPage{
			Reviews:      []domain.Review{{ID: 1}, {ID: 2}},
			TotalPages:   2,
			TotalReviews: 20,
		}

		require.NoError(t, s.RefreshDashboard(ctx))

		snap := s.DashboardState()
		assert.Equal(t, 20, snap.Overview.TotalReviews)
		assert.Len(t, snap.Reviews, 2)
		assert.Equal(t, 1, snap.Page)
		assert.Equal(t, 2, snap.TotalPages)
		assert.False(t, snap.Loading)
	})

	t.Run("Rejected", func(t *testing.T) {
		s, _, feed := newTestStore(new(gatewayMock), new(sessionStoreMock))
		feed.err = errors.New("feed unavailable")

		require.Error(t, s.RefreshDashboard(ctx))
		assert.Contains(t, s.DashboardState().Err, "feed unavailable")
	})

	t.Run("UsesCurrentPageAndFilter", func(t *testing.T) {
		s, _, feed := newTestStore(new(gatewayMock), new(sessionStoreMock))
		feed.page = domain.ReviewPage{TotalPages: 3}

		s.SetDashboardPage(3)
		s.SetDashboardSentiment(string(domain.SentimentNegative))
		s.SetDashboardSearch("broken")

		require.NoError(t, s.RefreshDashboard(ctx))
		assert.Equal(t, 3, feed.lastPage)
		assert.Equal(t, string(domain.SentimentNegative), feed.lastFilter.Sentiment)
		assert.Equal(t, "broken", feed.lastFilter.Search)
	})
}

func TestFilterDashboardReviews(t *testing.T) {
	ctx := context.Background()

	s, _, feed := newTestStore(new(gatewayMock), new(sessionStoreMock))
	feed.page = domain.ReviewPage{TotalPages: 1}

	s.SetDashboardPage(4)
	s.SetDashboardSentiment(string(domain.SentimentPositive))

	// Filter changes always restart from the first page.
	require.NoError(t, s.FilterDashboardReviews(ctx))
	assert.Equal(t, 1, feed.lastPage)
	assert.Equal(t, 1, s.DashboardState().Page)
}

func TestDashboardDefaults(t *testing.T) {
	s, _, _ := newTestStore(new(gatewayMock), new(sessionStoreMock))

	snap := s.DashboardState()
	assert.Equal(t, domain.FilterAll, snap.Filter.Sentiment)
	assert.Equal(t, 1, snap.Page)
	assert.Equal(t, 1, snap.TotalPages)
}
