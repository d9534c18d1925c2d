package state

import (
	"context"
	"fmt"
	"slices"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

type reviewsState struct {
	life       lifecycle
	items      []domain.Review
	totalCount int
	stats      domain.ReviewStats
}

type ReviewsSnapshot struct {
	Items      []domain.Review
	TotalCount int
	Stats      domain.ReviewStats
	AsyncStatus
}

func (s *Store) ReviewsState() ReviewsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ReviewsSnapshot{
		Items:       slices.Clone(s.reviews.items),
		TotalCount:  s.reviews.totalCount,
		Stats:       s.reviews.stats,
		AsyncStatus: s.reviews.life.status(),
	}
}

func (s *Store) FetchReviews(ctx context.Context, q domain.ReviewQuery) error {
	const op = "state.Store.FetchReviews"

	seq := s.begin(&s.reviews.life)
	page, err := s.gateway.Reviews(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.reviews.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.reviews.items = page.Results
	s.reviews.totalCount = page.Count
	return nil
}

// CreateReview classifies the comment locally before submission, then
// posts the labeled draft. The classifier cannot fail the operation; on
// any trouble it labels the review neutral.
func (s *Store) CreateReview(
	ctx context.Context, comment string, rating int, sourceURL string,
) error {
	const op = "state.Store.CreateReview"

	seq := s.begin(&s.reviews.life)

	draft := domain.ReviewDraft{
		Comment:   comment,
		Sentiment: s.classifier.Classify(ctx, comment),
		Rating:    rating,
		SourceURL: sourceURL,
	}
	created, err := s.gateway.CreateReview(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.reviews.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.reviews.items = append([]domain.Review{created}, s.reviews.items...)
	return nil
}

// UpdateReview patches a review. A draft without a sentiment label gets
// the comment re-classified.
func (s *Store) UpdateReview(ctx context.Context, id int, d domain.ReviewDraft) error {
	const op = "state.Store.UpdateReview"

	seq := s.begin(&s.reviews.life)

	if d.Sentiment == "" {
		d.Sentiment = s.classifier.Classify(ctx, d.Comment)
	}
	updated, err := s.gateway.UpdateReview(ctx, id, d)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.reviews.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	for i := range s.reviews.items {
		if s.reviews.items[i].ID == updated.ID {
			s.reviews.items[i] = updated
			break
		}
	}
	return nil
}

func (s *Store) DeleteReview(ctx context.Context, id int) error {
	const op = "state.Store.DeleteReview"

	seq := s.begin(&s.reviews.life)
	err := s.gateway.DeleteReview(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.reviews.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.reviews.items = slices.DeleteFunc(s.reviews.items, func(r domain.Review) bool {
		return r.ID == id
	})
	return nil
}

func (s *Store) FetchMyReviews(ctx context.Context) error {
	const op = "state.Store.FetchMyReviews"

	seq := s.begin(&s.reviews.life)
	reviews, err := s.gateway.MyReviews(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.reviews.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.reviews.items = reviews
	return nil
}

func (s *Store) FetchReviewStats(ctx context.Context) error {
	const op = "state.Store.FetchReviewStats"

	seq := s.begin(&s.reviews.life)
	stats, err := s.gateway.ReviewStats(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	settled := s.reviews.life.settle(seq, err)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !settled {
		return nil
	}

	s.reviews.stats = stats
	return nil
}

// AddReview inserts a review locally without a round-trip.
func (s *Store) AddReview(r domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews.items = append([]domain.Review{r}, s.reviews.items...)
}

func (s *Store) ClearReviewsError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews.life.err = ""
}
