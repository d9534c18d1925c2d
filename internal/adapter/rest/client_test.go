package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, staticTokens(token))
}

func TestRequestHeaders(t *testing.T) {
	t.Run("BearerAndRequestID", func(t *testing.T) {
		c := newTestClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.Write([]byte(`{"status":"healthy"}`))
		})
		require.NoError(t, c.Health(context.Background()))
	})

	t.Run("NoAuthorizationWithoutToken", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Write([]byte(`{"status":"healthy"}`))
		})
		require.NoError(t, c.Health(context.Background()))
	})
}

func TestErrorMapping(t *testing.T) {
	statusClient := func(status int, body string) *Client {
		return newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(body))
		})
	}

	t.Run("Unauthorized", func(t *testing.T) {
		c := statusClient(http.StatusUnauthorized, `{"detail":"token expired"}`)
		_, err := c.Users(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)

		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "token expired", apiErr.Detail)
	})

	t.Run("Forbidden", func(t *testing.T) {
		c := statusClient(http.StatusForbidden, `{"error":"sellers only"}`)
		_, err := c.Users(context.Background())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("NotFound", func(t *testing.T) {
		c := statusClient(http.StatusNotFound, `{"message":"no such product"}`)
		_, err := c.Product(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ServerErrorKeepsRawBody", func(t *testing.T) {
		c := statusClient(http.StatusInternalServerError, "boom")
		_, err := c.Users(context.Background())
		var apiErr *domain.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.Equal(t, "boom", apiErr.Detail)
	})
}

func TestLogin(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts/login/", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])

		w.Write([]byte(`{
			"detail": "login successful",
			"token": {"access": "acc", "refresh": "ref"},
			"user": {
				"email": "jane@example.com",
				"username": "jane",
				"first_name": "Jane",
				"last_name": "Doe",
				"role": "buyer"
			}
		}`))
	})

	sess, err := c.Login(context.Background(), "jane@example.com", "pass")
	require.NoError(t, err)
	assert.Equal(t, "acc", sess.Token.Access)
	assert.Equal(t, "ref", sess.Token.Refresh)
	assert.Equal(t, "jane", sess.User.Username)
	assert.Equal(t, domain.RoleBuyer, sess.User.Role)
	assert.True(t, sess.User.Active)
	assert.False(t, sess.User.DateJoined.IsZero())
}

func TestProducts(t *testing.T) {
	t.Run("PaginatedList", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/store/products/", r.URL.Path)
			w.Write([]byte(`{
				"count": 2,
				"next": "http://api/store/products/?page=2",
				"previous": null,
				"results": [
					{
						"id": 1, "product_name": "Red Shoe", "price": "49.99",
						"stock": 3, "is_available": true, "category": 1, "user": 9,
						"created_date": "2026-01-15T10:00:00Z",
						"sentiment": {"positive": 5, "negative": 1, "neutral": 0}
					},
					{
						"id": 2, "product_name": "Blue Jacket", "price": "120.00",
						"stock": 0, "is_available": false, "category": 2, "user": 9,
						"created_date": "2026-01-16"
					}
				]
			}`))
		})

		page, err := c.Products(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, page.Count)
		assert.NotEmpty(t, page.Next)
		assert.Empty(t, page.Previous)
		require.Len(t, page.Results, 2)

		first := page.Results[0]
		assert.Equal(t, "Red Shoe", first.Name)
		assert.True(t, first.Price.Equal(decimal.RequireFromString("49.99")))
		assert.Equal(t, domain.SentimentCounts{Positive: 5, Negative: 1}, first.Sentiment)

		second := page.Results[1]
		assert.False(t, second.Available)
		assert.Equal(t, 2026, second.CreatedDate.Year())
	})

	t.Run("MalformedPriceRejected", func(t *testing.T) {
		c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"count":1,"results":[{"id":1,"product_name":"X","price":"oops"}]}`))
		})
		_, err := c.Products(context.Background())
		require.Error(t, err)
	})

	t.Run("CreateUnwrapsEnvelope", func(t *testing.T) {
		c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/store/products/", r.URL.Path)
			require.Equal(t, http.MethodPost, r.Method)

			var body productBody
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Red Shoe", body.Name)
			assert.Equal(t, "49.99", body.Price)

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{
				"message": "product created",
				"product": {"id": 11, "product_name": "Red Shoe", "price": "49.99"}
			}`))
		})

		p, err := c.CreateProduct(context.Background(), domain.Product{
			Name:  "Red Shoe",
			Price: decimal.RequireFromString("49.99"),
		})
		require.NoError(t, err)
		assert.Equal(t, 11, p.ID)
	})
}

func TestCartItems(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/carts/items/", r.URL.Path)
		w.Write([]byte(`[
			{
				"id": 1,
				"product": {"id": 3, "product_name": "Green Hat", "price": "15.50"},
				"quantity": 2,
				"is_active": true,
				"sub_total": "31.00"
			}
		]`))
	})

	items, err := c.CartItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Green Hat", items[0].Product.Name)
	assert.True(t, items[0].Subtotal.Equal(decimal.RequireFromString("31.00")))
}

func TestSellerOrdersPath(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/aseller-orders/", r.URL.Path)
		w.Write([]byte(`[]`))
	})

	orders, err := c.SellerOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}
