package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

func (c *Client) Orders(
	ctx context.Context, q domain.OrderQuery,
) (domain.Page[domain.Order], error) {
	const op = "rest.Client.Orders"

	v := url.Values{}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}

	var out pageWire[orderWire]
	err := c.do(ctx, http.MethodGet, "/orders/orders/", v, nil, &out)
	if err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("%s: %w", op, err)
	}

	page := domain.Page[domain.Order]{Count: out.Count}
	if out.Next != nil {
		page.Next = *out.Next
	}
	if out.Previous != nil {
		page.Previous = *out.Previous
	}
	for _, w := range out.Results {
		o, err := w.toDomain()
		if err != nil {
			return domain.Page[domain.Order]{}, fmt.Errorf("%s: %w", op, err)
		}
		page.Results = append(page.Results, o)
	}
	return page, nil
}

func (c *Client) CreateOrder(
	ctx context.Context, d domain.OrderDraft,
) (domain.Order, error) {
	const op = "rest.Client.CreateOrder"

	type orderItemBody struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	body := struct {
		FirstName string          `json:"first_name"`
		LastName  string          `json:"last_name"`
		Email     string          `json:"email"`
		Phone     string          `json:"phone"`
		District  string          `json:"district"`
		Sector    string          `json:"sector"`
		Cell      string          `json:"cell"`
		Items     []orderItemBody `json:"order_items"`
	}{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		District:  d.District,
		Sector:    d.Sector,
		Cell:      d.Cell,
	}
	for _, it := range d.Items {
		body.Items = append(body.Items, orderItemBody{it.ProductID, it.Quantity})
	}

	var out orderWire
	err := c.do(ctx, http.MethodPost, "/orders/orders/", nil, body, &out)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	o, err := out.toDomain()
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

func (c *Client) UpdateOrderStatus(
	ctx context.Context, id int, s domain.OrderStatus,
) (domain.Order, error) {
	const op = "rest.Client.UpdateOrderStatus"

	body := struct {
		Status string `json:"status"`
	}{string(s)}

	var out orderWire
	path := fmt.Sprintf("/orders/orders/%d/", id)
	err := c.do(ctx, http.MethodPatch, path, nil, body, &out)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	o, err := out.toDomain()
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

func (c *Client) MyOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "rest.Client.MyOrders"
	return c.orderList(ctx, op, "/orders/my-orders/")
}

// SellerOrders hits the backend's misspelled route; the path is part of
// the deployed contract.
func (c *Client) SellerOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "rest.Client.SellerOrders"
	return c.orderList(ctx, op, "/orders/aseller-orders/")
}

func (c *Client) orderList(
	ctx context.Context, op, path string,
) ([]domain.Order, error) {
	var out []orderWire
	err := c.do(ctx, http.MethodGet, path, nil, nil, &out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	orders := make([]domain.Order, 0, len(out))
	for _, w := range out {
		o, err := w.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (c *Client) OrderStats(ctx context.Context) (domain.OrderStats, error) {
	const op = "rest.Client.OrderStats"

	var out struct {
		TotalOrders       int     `json:"total_orders"`
		CompletedOrders   int     `json:"completed_orders"`
		PendingOrders     int     `json:"pending_orders"`
		TotalSpent        float64 `json:"total_spent"`
		AverageOrderValue float64 `json:"average_order_value"`
		SellerStats       *struct {
			OrdersWithMyProducts int     `json:"orders_with_my_products"`
			TotalRevenue         float64 `json:"total_revenue"`
		} `json:"seller_stats"`
	}
	err := c.do(ctx, http.MethodGet, "/orders/orders/stats/", nil, nil, &out)
	if err != nil {
		return domain.OrderStats{}, fmt.Errorf("%s: %w", op, err)
	}

	stats := domain.OrderStats{
		TotalOrders:       out.TotalOrders,
		CompletedOrders:   out.CompletedOrders,
		PendingOrders:     out.PendingOrders,
		TotalSpent:        out.TotalSpent,
		AverageOrderValue: out.AverageOrderValue,
	}
	if out.SellerStats != nil {
		stats.Seller = &domain.SellerStats{
			OrdersWithMyProducts: out.SellerStats.OrdersWithMyProducts,
			TotalRevenue:         out.SellerStats.TotalRevenue,
		}
	}
	return stats, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	const op = "rest.Client.DeleteOrder"

	path := fmt.Sprintf("/orders/orders/%d/", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
