package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	Product struct {
		ID          int
		Name        string
		Description string
		Price       decimal.Decimal
		ImageURL    string
		Stock       int
		Available   bool
		CategoryID  int
		SellerID    int
		CreatedDate time.Time
		SellerPhone string
		Sentiment   SentimentCounts
		Reviews     []Review
	}

	// SentimentCounts is the aggregated review sentiment of a product.
	// The zero value (no reviews) reads as neutral.
	SentimentCounts struct {
		Positive int
		Negative int
		Neutral  int
	}
)

// Majority returns the dominant sentiment bucket, ties broken toward neutral.
func (c SentimentCounts) Majority() Sentiment {
	if c.Positive > c.Negative && c.Positive > c.Neutral {
		return SentimentPositive
	}
	if c.Negative > c.Positive && c.Negative > c.Neutral {
		return SentimentNegative
	}
	return SentimentNeutral
}

// Score is the positive-minus-negative balance used by sentiment sorting.
func (c SentimentCounts) Score() int {
	return c.Positive - c.Negative
}

type Category struct {
	ID          int
	Name        string
	Description string
	ImageURL    string
}
