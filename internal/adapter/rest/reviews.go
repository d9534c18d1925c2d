package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

type reviewBody struct {
	Comment   string `json:"comment"`
	Sentiment string `json:"sentiment"`
	Rating    int    `json:"rating"`
	SourceURL string `json:"source_url,omitempty"`
}

func reviewQueryValues(q domain.ReviewQuery) url.Values {
	v := url.Values{}
	if q.Role != "" {
		v.Set("user_role", string(q.Role))
	}
	if q.Sentiment != "" {
		v.Set("sentiment", string(q.Sentiment))
	}
	if q.Rating > 0 {
		v.Set("rating", strconv.Itoa(q.Rating))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	return v
}

func (c *Client) Reviews(
	ctx context.Context, q domain.ReviewQuery,
) (domain.Page[domain.Review], error) {
	const op = "rest.Client.Reviews"

	var out pageWire[reviewWire]
	err := c.do(ctx, http.MethodGet, "/kikuu/reviews/", reviewQueryValues(q), nil, &out)
	if err != nil {
		return domain.Page[domain.Review]{}, fmt.Errorf("%s: %w", op, err)
	}

	page := domain.Page[domain.Review]{Count: out.Count}
	if out.Next != nil {
		page.Next = *out.Next
	}
	if out.Previous != nil {
		page.Previous = *out.Previous
	}
	for _, w := range out.Results {
		page.Results = append(page.Results, w.toDomain())
	}
	return page, nil
}

func (c *Client) CreateReview(
	ctx context.Context, d domain.ReviewDraft,
) (domain.Review, error) {
	const op = "rest.Client.CreateReview"

	body := reviewBody{
		Comment:   d.Comment,
		Sentiment: string(d.Sentiment),
		Rating:    d.Rating,
		SourceURL: d.SourceURL,
	}

	var out struct {
		Message string     `json:"message"`
		Review  reviewWire `json:"review"`
	}
	err := c.do(ctx, http.MethodPost, "/kikuu/reviews/", nil, body, &out)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	return out.Review.toDomain(), nil
}

func (c *Client) UpdateReview(
	ctx context.Context, id int, d domain.ReviewDraft,
) (domain.Review, error) {
	const op = "rest.Client.UpdateReview"

	body := reviewBody{
		Comment:   d.Comment,
		Sentiment: string(d.Sentiment),
		Rating:    d.Rating,
		SourceURL: d.SourceURL,
	}

	var out reviewWire
	path := fmt.Sprintf("/kikuu/reviews/%d/", id)
	err := c.do(ctx, http.MethodPatch, path, nil, body, &out)
	if err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}
	return out.toDomain(), nil
}

func (c *Client) DeleteReview(ctx context.Context, id int) error {
	const op = "rest.Client.DeleteReview"

	path := fmt.Sprintf("/kikuu/reviews/%d/", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) MyReviews(ctx context.Context) ([]domain.Review, error) {
	const op = "rest.Client.MyReviews"

	var out pageWire[reviewWire]
	err := c.do(ctx, http.MethodGet, "/kikuu/reviews/", nil, nil, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	reviews := make([]domain.Review, 0, len(out.Results))
	for _, w := range out.Results {
		reviews = append(reviews, w.toDomain())
	}
	return reviews, nil
}

func (c *Client) ReviewStats(ctx context.Context) (domain.ReviewStats, error) {
	const op = "rest.Client.ReviewStats"

	var out struct {
		TotalReviews  int     `json:"total_reviews"`
		AverageRating float64 `json:"average_rating"`
		BySentiment   []struct {
			Sentiment string `json:"sentiment"`
			Count     int    `json:"count"`
		} `json:"sentiment_distribution"`
		ByRole []struct {
			UserRole string `json:"user_role"`
			Count    int    `json:"count"`
		} `json:"role_distribution"`
		ByRating []struct {
			Rating int `json:"rating"`
			Count  int `json:"count"`
		} `json:"rating_distribution"`
	}
	err := c.do(ctx, http.MethodGet, "/kikuu/reviews/stats/", nil, nil, &out)
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("%s: %w", op, err)
	}

	stats := domain.ReviewStats{
		TotalReviews:  out.TotalReviews,
		AverageRating: out.AverageRating,
	}
	for _, b := range out.BySentiment {
		stats.BySentiment = append(stats.BySentiment, domain.SentimentBucket{
			Sentiment: domain.Sentiment(b.Sentiment), Count: b.Count,
		})
	}
	for _, b := range out.ByRole {
		stats.ByRole = append(stats.ByRole, domain.RoleBucket{
			Role: domain.Role(b.UserRole), Count: b.Count,
		})
	}
	for _, b := range out.ByRating {
		stats.ByRating = append(stats.ByRating, domain.RatingBucket{
			Rating: b.Rating, Count: b.Count,
		})
	}
	return stats, nil
}
