package state

import (
	"context"
	"errors"
	"testing"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("ClassifiesBeforeSubmission", func(t *testing.T) {
		g := new(gatewayMock)
		s, cls, _ := newTestStore(g, new(sessionStoreMock))
		cls.label = domain.SentimentPositive

		wantDraft := domain.ReviewDraft{
			Comment:   "love it",
			Sentiment: domain.SentimentPositive,
			Rating:    5,
			SourceURL: "https://shop.example/p/1",
		}
		created := domain.Review{ID: 42, Comment: "love it", Sentiment: domain.SentimentPositive, Rating: 5}
		g.On("CreateReview", ctx, wantDraft).Return(created, nil)

		require.NoError(t, s.CreateReview(ctx, "love it", 5, "https://shop.example/p/1"))

		assert.True(t, cls.called)
		snap := s.ReviewsState()
		require.Len(t, snap.Items, 1)
		assert.Equal(t, 42, snap.Items[0].ID)
	})

	t.Run("Rejected", func(t *testing.T) {
		g := new(gatewayMock)
		s, cls, _ := newTestStore(g, new(sessionStoreMock))
		cls.label = domain.SentimentNegative

		g.On("CreateReview", ctx, domain.ReviewDraft{
			Comment: "bad", Sentiment: domain.SentimentNegative, Rating: 1,
		}).Return(domain.Review{}, errors.New("login required"))

		require.Error(t, s.CreateReview(ctx, "bad", 1, ""))
		snap := s.ReviewsState()
		assert.Empty(t, snap.Items)
		assert.Contains(t, snap.Err, "login required")
	})
}

func TestUpdateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("KeepsProvidedSentiment", func(t *testing.T) {
		g := new(gatewayMock)
		s, cls, _ := newTestStore(g, new(sessionStoreMock))

		d := domain.ReviewDraft{Comment: "fine", Sentiment: domain.SentimentNeutral, Rating: 3}
		g.On("UpdateReview", ctx, 7, d).Return(domain.Review{ID: 7, Sentiment: domain.SentimentNeutral}, nil)

		require.NoError(t, s.UpdateReview(ctx, 7, d))
		assert.False(t, cls.called)
	})

	t.Run("ReclassifiesUnlabeledDraft", func(t *testing.T) {
		g := new(gatewayMock)
		s, cls, _ := newTestStore(g, new(sessionStoreMock))
		cls.label = domain.SentimentPositive

		want := domain.ReviewDraft{Comment: "great again", Sentiment: domain.SentimentPositive, Rating: 5}
		g.On("UpdateReview", ctx, 7, want).Return(domain.Review{ID: 7}, nil)

		require.NoError(t, s.UpdateReview(ctx, 7, domain.ReviewDraft{Comment: "great again", Rating: 5}))
		assert.True(t, cls.called)
	})

	t.Run("PatchesItemInPlace", func(t *testing.T) {
		g := new(gatewayMock)
		s, _, _ := newTestStore(g, new(sessionStoreMock))

		g.On("MyReviews", ctx).Return([]domain.Review{
			{ID: 1, Comment: "old"},
			{ID: 2, Comment: "keep"},
		}, nil)
		require.NoError(t, s.FetchMyReviews(ctx))

		d := domain.ReviewDraft{Comment: "new", Sentiment: domain.SentimentNeutral}
		g.On("UpdateReview", ctx, 1, d).Return(domain.Review{ID: 1, Comment: "new"}, nil)
		require.NoError(t, s.UpdateReview(ctx, 1, d))

		snap := s.ReviewsState()
		require.Len(t, snap.Items, 2)
		assert.Equal(t, "new", snap.Items[0].Comment)
		assert.Equal(t, "keep", snap.Items[1].Comment)
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()

	g := new(gatewayMock)
	s, _, _ := newTestStore(g, new(sessionStoreMock))

	g.On("MyReviews", ctx).Return([]domain.Review{{ID: 1}, {ID: 2}}, nil)
	require.NoError(t, s.FetchMyReviews(ctx))

	g.On("DeleteReview", ctx, 1).Return(nil)
	require.NoError(t, s.DeleteReview(ctx, 1))

	snap := s.ReviewsState()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].ID)
}

func TestFetchMyReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("Fulfilled", func(t *testing.T) {
		g := new(gatewayMock)
		s, _, _ := newTestStore(g, new(sessionStoreMock))

		g.On("MyReviews", ctx).Return([]domain.Review{{ID: 4}, {ID: 5}}, nil)

		require.NoError(t, s.FetchMyReviews(ctx))

		snap := s.ReviewsState()
		require.Len(t, snap.Items, 2)
		assert.False(t, snap.Loading)
		assert.Empty(t, snap.Err)
	})

	t.Run("Rejected", func(t *testing.T) {
		g := new(gatewayMock)
		s, _, _ := newTestStore(g, new(sessionStoreMock))

		g.On("MyReviews", ctx).Return([]domain.Review(nil), errors.New("login required"))

		require.Error(t, s.FetchMyReviews(ctx))

		snap := s.ReviewsState()
		assert.Empty(t, snap.Items)
		assert.False(t, snap.Loading)
		assert.Contains(t, snap.Err, "login required")
	})
}

func TestFetchReviews(t *testing.T) {
	ctx := context.Background()

	g := new(gatewayMock)
	s, _, _ := newTestStore(g, new(sessionStoreMock))

	q := domain.ReviewQuery{Sentiment: domain.SentimentPositive, Page: 2}
	page := domain.Page[domain.Review]{
		Count:   25,
		Results: []domain.Review{{ID: 10, Sentiment: domain.SentimentPositive}},
	}
	g.On("Reviews", ctx, q).Return(page, nil)

	require.NoError(t, s.FetchReviews(ctx, q))

	snap := s.ReviewsState()
	assert.Equal(t, 25, snap.TotalCount)
	require.Len(t, snap.Items, 1)
}

func TestFetchReviewStats(t *testing.T) {
	ctx := context.Background()

	g := new(gatewayMock)
	s, _, _ := newTestStore(g, new(sessionStoreMock))

	stats := domain.ReviewStats{
		TotalReviews:  12,
		AverageRating: 4.2,
		BySentiment: []domain.SentimentBucket{
			{Sentiment: domain.SentimentPositive, Count: 9},
		},
	}
	g.On("ReviewStats", ctx).Return(stats, nil)

	require.NoError(t, s.FetchReviewStats(ctx))
	assert.Equal(t, stats, s.ReviewsState().Stats)
}

func TestAddReviewLocally(t *testing.T) {
	g := new(gatewayMock)
	s, _, _ := newTestStore(g, new(sessionStoreMock))

	s.AddReview(domain.Review{ID: 99, Comment: "instant"})

	snap := s.ReviewsState()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 99, snap.Items[0].ID)
}
