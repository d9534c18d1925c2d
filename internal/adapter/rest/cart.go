package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

func (c *Client) CartItems(ctx context.Context) ([]domain.CartItem, error) {
	const op = "rest.Client.CartItems"

	var out []cartItemWire
	err := c.do(ctx, http.MethodGet, "/carts/items/", nil, nil, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]domain.CartItem, 0, len(out))
	for _, w := range out {
		it, err := w.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (c *Client) AddToCart(ctx context.Context, productID, quantity int) error {
	const op = "rest.Client.AddToCart"

	if quantity <= 0 {
		return fmt.Errorf("%s: %w: quantity must be positive", op, domain.ErrInvalid)
	}

	body := struct {
		Product  int `json:"product"`
		Quantity int `json:"quantity"`
	}{productID, quantity}

	err := c.do(ctx, http.MethodPost, "/carts/items/add/", nil, body, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) UpdateCartQuantity(ctx context.Context, itemID, quantity int) error {
	const op = "rest.Client.UpdateCartQuantity"

	body := struct {
		CartItemID int `json:"cart_item_id"`
		Quantity   int `json:"quantity"`
	}{itemID, quantity}

	err := c.do(ctx, http.MethodPut, "/carts/items/update-quantity/", nil, body, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) RemoveFromCart(ctx context.Context, itemID int) error {
	const op = "rest.Client.RemoveFromCart"

	path := fmt.Sprintf("/carts/items/remove/%d/", itemID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
