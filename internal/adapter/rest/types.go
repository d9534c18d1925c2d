package rest

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

type (
	pageWire[T any] struct {
		Count    int     `json:"count"`
		Next     *string `json:"next"`
		Previous *string `json:"previous"`
		Results  []T     `json:"results"`
	}

	userWire struct {
		ID         int    `json:"id"`
		Email      string `json:"email"`
		Username   string `json:"username"`
		FirstName  string `json:"first_name"`
		LastName   string `json:"last_name"`
		Role       string `json:"role"`
		IsActive   bool   `json:"is_active"`
		DateJoined string `json:"date_joined"`
	}

	categoryWire struct {
		ID          int    `json:"id"`
		Name        string `json:"category_name"`
		Description string `json:"description"`
		ImageURL    string `json:"cat_image_url"`
	}

	sentimentWire struct {
		Positive int `json:"positive"`
		Negative int `json:"negative"`
		Neutral  int `json:"neutral"`
	}

	productWire struct {
		ID          int            `json:"id"`
		Name        string         `json:"product_name"`
		Description string         `json:"description"`
		Price       string         `json:"price"`
		ImageURL    string         `json:"image_url"`
		Stock       int            `json:"stock"`
		IsAvailable bool           `json:"is_available"`
		Category    int            `json:"category"`
		User        int            `json:"user"`
		CreatedDate string         `json:"created_date"`
		SellerPhone string         `json:"seller_phone_number"`
		Sentiment   *sentimentWire `json:"sentiment,omitempty"`
		Reviews     []reviewWire   `json:"reviews,omitempty"`
	}

	cartProductWire struct {
		ID       int    `json:"id"`
		Name     string `json:"product_name"`
		Price    string `json:"price"`
		ImageURL string `json:"image_url"`
	}

	cartItemWire struct {
		ID       int             `json:"id"`
		Product  cartProductWire `json:"product"`
		Quantity int             `json:"quantity"`
		IsActive bool            `json:"is_active"`
		SubTotal string          `json:"sub_total"`
	}

	reviewWire struct {
		ID         int    `json:"id"`
		Username   string `json:"username"`
		UserEmail  string `json:"user_email"`
		UserRole   string `json:"user_role"`
		Comment    string `json:"comment"`
		Sentiment  string `json:"sentiment"`
		Rating     int    `json:"rating"`
		SourceURL  string `json:"source_url"`
		IsVerified bool   `json:"is_verified"`
		CreatedAt  string `json:"created_at"`
		UpdatedAt  string `json:"updated_at"`
	}

	orderProductWire struct {
		ID           int    `json:"id"`
		Product      int    `json:"product"`
		ProductName  string `json:"product_name"`
		ProductImage string `json:"product_image"`
		Quantity     int    `json:"quantity"`
		ProductPrice string `json:"product_price"`
		Ordered      bool   `json:"ordered"`
		CreatedAt    string `json:"created_at"`
	}

	orderWire struct {
		ID             int                `json:"id"`
		UserEmail      string             `json:"user_email"`
		FirstName      string             `json:"first_name"`
		LastName       string             `json:"last_name"`
		Email          string             `json:"email"`
		Phone          string             `json:"phone"`
		District       string             `json:"district"`
		Sector         string             `json:"sector"`
		Cell           string             `json:"cell"`
		OrderTotal     string             `json:"order_total"`
		Tax            string             `json:"tax"`
		Status         string             `json:"status"`
		OrderNumber    string             `json:"order_number"`
		IsOrdered      bool               `json:"is_ordered"`
		CreatedAt      string             `json:"created_at"`
		UpdatedAt      string             `json:"updated_at"`
		OrderProducts  []orderProductWire `json:"order_products"`
		PaymentDetails map[string]any     `json:"payment_details"`
	}
)

// parseWireTime is tolerant: timestamps are display-only and must not fail
// an otherwise valid payload.
func parseWireTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseWirePrice rejects malformed money before it can enter slice state.
func parseWirePrice(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed %s %q: %w", field, s, err)
	}
	return d, nil
}

func (w userWire) toDomain() domain.User {
	return domain.User{
		ID:         w.ID,
		Email:      w.Email,
		Username:   w.Username,
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		Role:       domain.Role(w.Role),
		Active:     w.IsActive,
		DateJoined: parseWireTime(w.DateJoined),
	}
}

func (w categoryWire) toDomain() domain.Category {
	return domain.Category{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		ImageURL:    w.ImageURL,
	}
}

func categoryToWire(c domain.Category) categoryWire {
	return categoryWire{
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
	}
}

func (w productWire) toDomain() (domain.Product, error) {
	price, err := parseWirePrice("price", w.Price)
	if err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		ID:          w.ID,
		Name:        w.Name,
		Description: w.Description,
		Price:       price,
		ImageURL:    w.ImageURL,
		Stock:       w.Stock,
		Available:   w.IsAvailable,
		CategoryID:  w.Category,
		SellerID:    w.User,
		CreatedDate: parseWireTime(w.CreatedDate),
		SellerPhone: w.SellerPhone,
	}
	if w.Sentiment != nil {
		p.Sentiment = domain.SentimentCounts{
			Positive: w.Sentiment.Positive,
			Negative: w.Sentiment.Negative,
			Neutral:  w.Sentiment.Neutral,
		}
	}
	for _, rw := range w.Reviews {
		p.Reviews = append(p.Reviews, rw.toDomain())
	}
	return p, nil
}

func (w cartItemWire) toDomain() (domain.CartItem, error) {
	price, err := parseWirePrice("price", w.Product.Price)
	if err != nil {
		return domain.CartItem{}, err
	}
	subTotal, err := parseWirePrice("sub_total", w.SubTotal)
	if err != nil {
		return domain.CartItem{}, err
	}

	return domain.CartItem{
		ID: w.ID,
		Product: domain.CartProduct{
			ID:       w.Product.ID,
			Name:     w.Product.Name,
			Price:    price,
			ImageURL: w.Product.ImageURL,
		},
		Quantity: w.Quantity,
		Active:   w.IsActive,
		Subtotal: subTotal,
	}, nil
}

func (w reviewWire) toDomain() domain.Review {
	return domain.Review{
		ID:        w.ID,
		Username:  w.Username,
		UserEmail: w.UserEmail,
		UserRole:  domain.Role(w.UserRole),
		Comment:   w.Comment,
		Sentiment: domain.Sentiment(w.Sentiment),
		Rating:    w.Rating,
		SourceURL: w.SourceURL,
		Verified:  w.IsVerified,
		CreatedAt: parseWireTime(w.CreatedAt),
		UpdatedAt: parseWireTime(w.UpdatedAt),
	}
}

func (w orderWire) toDomain() (domain.Order, error) {
	total, err := parseWirePrice("order_total", w.OrderTotal)
	if err != nil {
		return domain.Order{}, err
	}
	tax, err := parseWirePrice("tax", w.Tax)
	if err != nil {
		return domain.Order{}, err
	}

	o := domain.Order{
		ID:             w.ID,
		UserEmail:      w.UserEmail,
		FirstName:      w.FirstName,
		LastName:       w.LastName,
		Email:          w.Email,
		Phone:          w.Phone,
		District:       w.District,
		Sector:         w.Sector,
		Cell:           w.Cell,
		Total:          total,
		Tax:            tax,
		Status:         domain.OrderStatus(w.Status),
		OrderNumber:    w.OrderNumber,
		Ordered:        w.IsOrdered,
		CreatedAt:      parseWireTime(w.CreatedAt),
		UpdatedAt:      parseWireTime(w.UpdatedAt),
		PaymentDetails: w.PaymentDetails,
	}
	for _, pw := range w.OrderProducts {
		price, err := parseWirePrice("product_price", pw.ProductPrice)
		if err != nil {
			return domain.Order{}, err
		}
		o.Products = append(o.Products, domain.OrderProduct{
			ID:           pw.ID,
			ProductID:    pw.Product,
			ProductName:  pw.ProductName,
			ProductImage: pw.ProductImage,
			Quantity:     pw.Quantity,
			Price:        price,
			Ordered:      pw.Ordered,
			CreatedAt:    parseWireTime(pw.CreatedAt),
		})
	}
	return o, nil
}
