package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "rest.Client.Categories"

	var out []categoryWire
	err := c.do(ctx, http.MethodGet, "/store/categories/", nil, nil, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cats := make([]domain.Category, 0, len(out))
	for _, w := range out {
		cats = append(cats, w.toDomain())
	}
	return cats, nil
}

func (c *Client) CreateCategory(
	ctx context.Context, cat domain.Category,
) (domain.Category, error) {
	const op = "rest.Client.CreateCategory"

	var out categoryWire
	err := c.do(ctx, http.MethodPost, "/store/categories/", nil, categoryToWire(cat), &out)
	if err != nil {
		return domain.Category{}, fmt.Errorf("%s: %w", op, err)
	}
	return out.toDomain(), nil
}
