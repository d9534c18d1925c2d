package domain

import (
	"math"
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

type Review struct {
	ID        int
	Username  string
	UserEmail string
	UserRole  Role
	Comment   string
	Sentiment Sentiment
	Rating    int
	SourceURL string
	Verified  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewDraft is what a user submits; the sentiment label is filled in
// client-side by the classifier before the draft leaves the process.
type ReviewDraft struct {
	Comment   string
	Sentiment Sentiment
	Rating    int
	SourceURL string
}

// SentimentFromStars maps a star-rating-like classifier label to a bucket:
// four or more stars is positive, two or fewer negative, the rest neutral.
func SentimentFromStars(stars int) Sentiment {
	switch {
	case stars >= 4:
		return SentimentPositive
	case stars <= 2:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// SentimentSummary is the chart-ready tally over a set of reviews.
type SentimentSummary struct {
	Counts        SentimentCounts
	AverageRating float64
}

// AggregateReviews tallies sentiment labels and averages numeric ratings.
// The average is rounded to one decimal for display; it is never stored.
func AggregateReviews(rs []Review) SentimentSummary {
	var s SentimentSummary
	if len(rs) == 0 {
		return s
	}

	var ratingSum int
	for _, r := range rs {
		switch r.Sentiment {
		case SentimentPositive:
			s.Counts.Positive++
		case SentimentNegative:
			s.Counts.Negative++
		default:
			s.Counts.Neutral++
		}
		ratingSum += r.Rating
	}

	avg := float64(ratingSum) / float64(len(rs))
	s.AverageRating = math.Round(avg*10) / 10
	return s
}

type (
	// ReviewStats is the backend review statistics payload.
	ReviewStats struct {
		TotalReviews  int
		AverageRating float64
		BySentiment   []SentimentBucket
		ByRole        []RoleBucket
		ByRating      []RatingBucket
	}

	SentimentBucket struct {
		Sentiment Sentiment
		Count     int
	}

	RoleBucket struct {
		Role  Role
		Count int
	}

	RatingBucket struct {
		Rating int
		Count  int
	}
)
