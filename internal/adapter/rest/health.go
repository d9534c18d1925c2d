package rest

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) Health(ctx context.Context) error {
	const op = "rest.Client.Health"

	if err := c.do(ctx, http.MethodGet, "/health/", nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) DetailedHealth(ctx context.Context) (map[string]any, error) {
	const op = "rest.Client.DetailedHealth"

	var out map[string]any
	err := c.do(ctx, http.MethodGet, "/health/detailed/", nil, nil, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
