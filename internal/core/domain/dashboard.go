package domain

import "time"

type (
	// SentimentOverview is the admin-dashboard headline block.
	SentimentOverview struct {
		TotalReviews     int
		AverageSentiment float64
		Distribution     SentimentCounts
	}

	// SentimentTrend is one point of the sentiment-over-time series.
	SentimentTrend struct {
		Date   time.Time
		Counts SentimentCounts
	}

	// DashboardFilter narrows the dashboard review table.
	DashboardFilter struct {
		Sentiment string
		Search    string
	}

	// ReviewPage is one page of dashboard reviews.
	ReviewPage struct {
		Reviews      []Review
		Page         int
		TotalPages   int
		TotalReviews int
	}
)
