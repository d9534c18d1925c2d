package domain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortSentiment SortKey = "sentiment"
)

// FilterCriteria is the ephemeral product-view filter. Category and
// Sentiment hold "all" or a concrete value; PriceMin/PriceMax bound an
// inclusive range.
type FilterCriteria struct {
	Search    string
	Category  string
	Sentiment string
	MinRating int
	PriceMin  decimal.Decimal
	PriceMax  decimal.Decimal
	SortBy    SortKey
}

const FilterAll = "all"

func DefaultFilters() FilterCriteria {
	return FilterCriteria{
		Category:  FilterAll,
		Sentiment: FilterAll,
		PriceMin:  decimal.Zero,
		PriceMax:  decimal.NewFromInt(1000),
		SortBy:    SortRelevance,
	}
}

// FilterProducts keeps products matching every criterion: case-insensitive
// substring search on name or description, category id, inclusive price
// range, and majority sentiment bucket.
func FilterProducts(ps []Product, c FilterCriteria) []Product {
	q := strings.ToLower(strings.TrimSpace(c.Search))

	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if c.Category != FilterAll && c.Category != strconv.Itoa(p.CategoryID) {
			continue
		}
		if p.Price.LessThan(c.PriceMin) || p.Price.GreaterThan(c.PriceMax) {
			continue
		}
		if c.Sentiment != FilterAll && string(p.Sentiment.Majority()) != c.Sentiment {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts returns a sorted copy. Unknown keys (including relevance)
// leave the order unchanged.
func SortProducts(ps []Product, key SortKey) []Product {
	out := slices.Clone(ps)
	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b Product) int {
			return b.Price.Cmp(a.Price)
		})
	case SortSentiment:
		slices.SortStableFunc(out, func(a, b Product) int {
			return b.Sentiment.Score() - a.Sentiment.Score()
		})
	}
	return out
}
