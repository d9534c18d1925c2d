package port

import (
	"context"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
)

type AuthGateway interface {
	Register(context.Context, domain.Registration) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Session, error)
	RefreshToken(ctx context.Context, refresh string) (access string, err error)
	Users(context.Context) ([]domain.User, error)
}

type CategoriesGateway interface {
	Categories(context.Context) ([]domain.Category, error)
	CreateCategory(context.Context, domain.Category) (domain.Category, error)
}

type ProductsGateway interface {
	Products(context.Context) (domain.Page[domain.Product], error)
	Product(ctx context.Context, id int) (domain.Product, error)
	CreateProduct(context.Context, domain.Product) (domain.Product, error)
	UpdateProduct(context.Context, domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type CartGateway interface {
	CartItems(context.Context) ([]domain.CartItem, error)
	AddToCart(ctx context.Context, productID, quantity int) error
	UpdateCartQuantity(ctx context.Context, itemID, quantity int) error
	RemoveFromCart(ctx context.Context, itemID int) error
}

type ReviewsGateway interface {
	Reviews(context.Context, domain.ReviewQuery) (domain.Page[domain.Review], error)
	CreateReview(context.Context, domain.ReviewDraft) (domain.Review, error)
	UpdateReview(ctx context.Context, id int, d domain.ReviewDraft) (domain.Review, error)
	DeleteReview(ctx context.Context, id int) error
	MyReviews(context.Context) ([]domain.Review, error)
	ReviewStats(context.Context) (domain.ReviewStats, error)
}

type OrdersGateway interface {
	Orders(context.Context, domain.OrderQuery) (domain.Page[domain.Order], error)
	CreateOrder(context.Context, domain.OrderDraft) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, s domain.OrderStatus) (domain.Order, error)
	MyOrders(context.Context) ([]domain.Order, error)
	SellerOrders(context.Context) ([]domain.Order, error)
	OrderStats(context.Context) (domain.OrderStats, error)
	DeleteOrder(ctx context.Context, id int) error
}

type HealthGateway interface {
	Health(context.Context) error
	DetailedHealth(context.Context) (map[string]any, error)
}

// Gateway is the full backend surface the state container depends on.
type Gateway interface {
	AuthGateway
	CategoriesGateway
	ProductsGateway
	CartGateway
	ReviewsGateway
	OrdersGateway
	HealthGateway
}

// SessionStore is the durable client storage: the user/token session keys
// and the locally persisted wishlist.
type SessionStore interface {
	SaveSession(context.Context, domain.Session) error
	LoadSession(context.Context) (domain.Session, error)
	ClearSession(context.Context) error
	SaveWishlist(context.Context, []int) error
	LoadWishlist(context.Context) ([]int, error)
}

// TokenSource yields the access token to attach to outgoing requests,
// empty when no session is stored.
type TokenSource interface {
	AccessToken() string
}

// Classifier maps free text to a sentiment bucket. Implementations absorb
// their own failures and fall back to neutral; Classify never errors.
type Classifier interface {
	Classify(ctx context.Context, text string) domain.Sentiment
}

// SentimentFeed backs the admin sentiment dashboard.
type SentimentFeed interface {
	Overview(context.Context) (domain.SentimentOverview, error)
	FeedReviews(ctx context.Context, page, perPage int, f domain.DashboardFilter) (domain.ReviewPage, error)
}
