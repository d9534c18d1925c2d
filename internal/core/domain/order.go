package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderProcessed OrderStatus = "processed"
	OrderShipped   OrderStatus = "shipped"
	OrderCompleted OrderStatus = "completed"
	OrderCanceled  OrderStatus = "canceled"
)

type (
	// Order is an immutable snapshot once created; only Status changes,
	// and transitions are server-authoritative.
	Order struct {
		ID             int
		UserEmail      string
		FirstName      string
		LastName       string
		Email          string
		Phone          string
		District       string
		Sector         string
		Cell           string
		Total          decimal.Decimal
		Tax            decimal.Decimal
		Status         OrderStatus
		OrderNumber    string
		Ordered        bool
		CreatedAt      time.Time
		UpdatedAt      time.Time
		Products       []OrderProduct
		PaymentDetails map[string]any
	}

	OrderProduct struct {
		ID           int
		ProductID    int
		ProductName  string
		ProductImage string
		Quantity     int
		Price        decimal.Decimal
		Ordered      bool
		CreatedAt    time.Time
	}

	// OrderDraft is the client-side order request.
	OrderDraft struct {
		FirstName string
		LastName  string
		Email     string
		Phone     string
		District  string
		Sector    string
		Cell      string
		Items     []OrderItem
	}

	OrderItem struct {
		ProductID int
		Quantity  int
	}
)

// Validate applies the local checks an order must pass before any
// network call is made.
func (d OrderDraft) Validate() error {
	required := map[string]string{
		"first_name": d.FirstName,
		"last_name":  d.LastName,
		"email":      d.Email,
		"phone":      d.Phone,
	}
	for field, v := range required {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalid, field)
		}
	}
	if len(d.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrInvalid)
	}
	for _, it := range d.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalid)
		}
	}
	return nil
}

type (
	// OrderStats mirrors the backend order statistics payload; the seller
	// block is present only for seller accounts.
	OrderStats struct {
		TotalOrders       int
		CompletedOrders   int
		PendingOrders     int
		TotalSpent        float64
		AverageOrderValue float64
		Seller            *SellerStats
	}

	SellerStats struct {
		OrdersWithMyProducts int
		TotalRevenue         float64
	}
)
