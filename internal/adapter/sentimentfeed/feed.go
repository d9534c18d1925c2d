// Package sentimentfeed is the local data source behind the admin sentiment
// dashboard. The roster is deterministic demo data; the entity has no
// backend persistence.
package sentimentfeed

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/kikuu-commerce/storefront/internal/core/port"
)

type Feed struct {
	reviews []domain.Review
}

var _ port.SentimentFeed = (*Feed)(nil)

func New() *Feed {
	return &Feed{reviews: seedReviews()}
}

func (f *Feed) Overview(ctx context.Context) (domain.SentimentOverview, error) {
	const op = "sentimentfeed.Feed.Overview"

	if err := ctx.Err(); err != nil {
		return domain.SentimentOverview{}, fmt.Errorf("%s: %w", op, err)
	}

	summary := domain.AggregateReviews(f.reviews)
	total := len(f.reviews)

	var positiveShare float64
	if total > 0 {
		positiveShare = float64(summary.Counts.Positive) / float64(total)
	}

	return domain.SentimentOverview{
		TotalReviews:     total,
		AverageSentiment: math.Round(positiveShare*100) / 100,
		Distribution:     summary.Counts,
	}, nil
}

func (f *Feed) FeedReviews(
	ctx context.Context, page, perPage int, filter domain.DashboardFilter,
) (domain.ReviewPage, error) {
	const op = "sentimentfeed.Feed.FeedReviews"

	if err := ctx.Err(); err != nil {
		return domain.ReviewPage{}, fmt.Errorf("%s: %w", op, err)
	}
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	matched := make([]domain.Review, 0, len(f.reviews))
	q := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, r := range f.reviews {
		if filter.Sentiment != "" && filter.Sentiment != domain.FilterAll &&
			string(r.Sentiment) != filter.Sentiment {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Comment), q) &&
			!strings.Contains(strings.ToLower(r.Username), q) {
			continue
		}
		matched = append(matched, r)
	}

	totalPages := (len(matched) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	lo := (page - 1) * perPage
	hi := min(lo+perPage, len(matched))

	return domain.ReviewPage{
		Reviews:      matched[lo:hi],
		Page:         page,
		TotalPages:   totalPages,
		TotalReviews: len(matched),
	}, nil
}

func seedReviews() []domain.Review {
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

	entries := []struct {
		username  string
		comment   string
		sentiment domain.Sentiment
		rating    int
	}{
		{"amina_k", "Fast delivery and the shoes fit perfectly. Will buy again.", domain.SentimentPositive, 5},
		{"jbosco", "Quality is far below what the photos promised.", domain.SentimentNegative, 1},
		{"claire.m", "Arrived on time, nothing special but does the job.", domain.SentimentNeutral, 3},
		{"eric_n", "The seller answered all my questions before shipping. Great service.", domain.SentimentPositive, 5},
		{"solange", "Package came damaged and support never replied.", domain.SentimentNegative, 2},
		{"patrick75", "Average product for an average price.", domain.SentimentNeutral, 3},
		{"divine.u", "Love the fabric, exactly the color from the listing.", domain.SentimentPositive, 4},
		{"kmurenzi", "Sizing chart is wrong, had to return it.", domain.SentimentNegative, 2},
		{"yvette_i", "It works. Delivery took longer than announced.", domain.SentimentNeutral, 3},
		{"jdamour", "Best purchase this year, battery lasts for days.", domain.SentimentPositive, 5},
		{"grace.r", "Stopped working after one week.", domain.SentimentNegative, 1},
		{"obed_h", "Decent value, packaging could be better.", domain.SentimentNeutral, 3},
		{"sandrine", "Superb craftsmanship, you can tell it is handmade.", domain.SentimentPositive, 5},
		{"fiston", "Completely different item from the photos. Avoid.", domain.SentimentNegative, 1},
		{"aline.n", "Got it as a gift, the recipient seems happy.", domain.SentimentPositive, 4},
		{"emmy_k", "Neither good nor bad. It is a phone case.", domain.SentimentNeutral, 3},
		{"chantal", "Shipped internationally without any issue.", domain.SentimentPositive, 5},
		{"rugamba", "Charged twice for one order, still waiting for the refund.", domain.SentimentNegative, 1},
		{"josiane", "Colors faded after the second wash.", domain.SentimentNegative, 2},
		{"bright_m", "Exactly as described, five stars.", domain.SentimentPositive, 5},
	}

	reviews := make([]domain.Review, 0, len(entries))
	for i, e := range entries {
		reviews = append(reviews, domain.Review{
			ID:        i + 1,
			Username:  e.username,
			UserEmail: e.username + "@example.com",
			UserRole:  domain.RoleBuyer,
			Comment:   e.comment,
			Sentiment: e.sentiment,
			Rating:    e.rating,
			Verified:  i%3 != 0,
			CreatedAt: base.Add(time.Duration(i) * 26 * time.Hour),
			UpdatedAt: base.Add(time.Duration(i) * 26 * time.Hour),
		})
	}
	return reviews
}
