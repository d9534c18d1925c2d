package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

// productEnvelope wraps single-product responses; the backend nests the
// record under "product" alongside a message.
type productEnvelope struct {
	Message string      `json:"message"`
	Product productWire `json:"product"`
}

type productBody struct {
	Name        string `json:"product_name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	Stock       int    `json:"stock"`
	IsAvailable bool   `json:"is_available"`
	Category    int    `json:"category"`
}

func productToBody(p domain.Product) productBody {
	return productBody{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		IsAvailable: p.Available,
		Category:    p.CategoryID,
	}
}

func (c *Client) Products(ctx context.Context) (domain.Page[domain.Product], error) {
	const op = "rest.Client.Products"

	var out pageWire[productWire]
	err := c.do(ctx, http.MethodGet, "/store/products/", nil, nil, &out)
	if err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("%s: %w", op, err)
	}

	page := domain.Page[domain.Product]{Count: out.Count}
	if out.Next != nil {
		page.Next = *out.Next
	}
	if out.Previous != nil {
		page.Previous = *out.Previous
	}
	for _, w := range out.Results {
		p, err := w.toDomain()
		if err != nil {
			return domain.Page[domain.Product]{}, fmt.Errorf("%s: %w", op, err)
		}
		page.Results = append(page.Results, p)
	}
	return page, nil
}

func (c *Client) Product(ctx context.Context, id int) (domain.Product, error) {
	const op = "rest.Client.Product"

	var out productEnvelope
	path := fmt.Sprintf("/store/products/%d/", id)
	err := c.do(ctx, http.MethodGet, path, nil, nil, &out)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := out.Product.toDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (c *Client) CreateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "rest.Client.CreateProduct"

	var out productEnvelope
	err := c.do(ctx, http.MethodPost, "/store/products/", nil, productToBody(p), &out)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := out.Product.toDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (c *Client) UpdateProduct(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "rest.Client.UpdateProduct"

	var out productEnvelope
	path := fmt.Sprintf("/store/products/%d/", p.ID)
	err := c.do(ctx, http.MethodPut, path, nil, productToBody(p), &out)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	updated, err := out.Product.toDomain()
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	const op = "rest.Client.DeleteProduct"

	path := fmt.Sprintf("/store/products/%d/", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
