package state

import (
	"context"

	"github.com/kikuu-commerce/storefront/internal/core/domain"
	"github.com/kikuu-commerce/storefront/internal/core/port"
	"github.com/stretchr/testify/mock"
)

type gatewayMock struct {
	mock.Mock
}

var _ port.Gateway = (*gatewayMock)(nil)

func (m *gatewayMock) Register(ctx context.Context, r domain.Registration) (domain.User, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *gatewayMock) Login(ctx context.Context, email, password string) (domain.Session, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *gatewayMock) RefreshToken(ctx context.Context, refresh string) (string, error) {
	args := m.Called(ctx, refresh)
	return args.String(0), args.Error(1)
}

func (m *gatewayMock) Users(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *gatewayMock) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *gatewayMock) CreateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(domain.Category), args.Error(1)
}

func (m *gatewayMock) Products(ctx context.Context) (domain.Page[domain.Product], error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Page[domain.Product]), args.Error(1)
}

func (m *gatewayMock) Product(ctx context.Context, id int) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *gatewayMock) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *gatewayMock) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *gatewayMock) DeleteProduct(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *gatewayMock) CartItems(ctx context.Context) ([]domain.CartItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CartItem), args.Error(1)
}

func (m *gatewayMock) AddToCart(ctx context.Context, productID, quantity int) error {
	return m.Called(ctx, productID, quantity).Error(0)
}

func (m *gatewayMock) UpdateCartQuantity(ctx context.Context, itemID, quantity int) error {
	return m.Called(ctx, itemID, quantity).Error(0)
}

func (m *gatewayMock) RemoveFromCart(ctx context.Context, itemID int) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *gatewayMock) Reviews(ctx context.Context, q domain.ReviewQuery) (domain.Page[domain.Review], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Page[domain.Review]), args.Error(1)
}

func (m *gatewayMock) CreateReview(ctx context.Context, d domain.ReviewDraft) (domain.Review, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *gatewayMock) UpdateReview(ctx context.Context, id int, d domain.ReviewDraft) (domain.Review, error) {
	args := m.Called(ctx, id, d)
	return args.Get(0).(domain.Review), args.Error(1)
}

func (m *gatewayMock) DeleteReview(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *gatewayMock) MyReviews(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *gatewayMock) ReviewStats(ctx context.Context) (domain.ReviewStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ReviewStats), args.Error(1)
}

func (m *gatewayMock) Orders(ctx context.Context, q domain.OrderQuery) (domain.Page[domain.Order], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(domain.Page[domain.Order]), args.Error(1)
}

func (m *gatewayMock) CreateOrder(ctx context.Context, d domain.OrderDraft) (domain.Order, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *gatewayMock) UpdateOrderStatus(ctx context.Context, id int, s domain.OrderStatus) (domain.Order, error) {
	args := m.Called(ctx, id, s)
	return args.Get(0).(domain.Order), args.Error(1)
}

func (m *gatewayMock) MyOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *gatewayMock) SellerOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *gatewayMock) OrderStats(ctx context.Context) (domain.OrderStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.OrderStats), args.Error(1)
}

func (m *gatewayMock) DeleteOrder(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *gatewayMock) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *gatewayMock) DetailedHealth(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]any), args.Error(1)
}

type sessionStoreMock struct {
	mock.Mock
}

var _ port.SessionStore = (*sessionStoreMock)(nil)

func (m *sessionStoreMock) SaveSession(ctx context.Context, sess domain.Session) error {
	return m.Called(ctx, sess).Error(0)
}

func (m *sessionStoreMock) LoadSession(ctx context.Context) (domain.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Session), args.Error(1)
}

func (m *sessionStoreMock) ClearSession(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *sessionStoreMock) SaveWishlist(ctx context.Context, ids []int) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *sessionStoreMock) LoadWishlist(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int), args.Error(1)
}

// classifierStub returns a fixed label and records whether it was called.
type classifierStub struct {
	label  domain.Sentiment
	called bool
}

var _ port.Classifier = (*classifierStub)(nil)

func (c *classifierStub) Classify(context.Context, string) domain.Sentiment {
	c.called = true
	if c.label == "" {
		return domain.SentimentNeutral
	}
	return c.label
}

type feedStub struct {
	overview domain.SentimentOverview
	page     domain.ReviewPage
	err      error

	lastPage   int
	lastFilter domain.DashboardFilter
}

var _ port.SentimentFeed = (*feedStub)(nil)

func (f *feedStub) Overview(context.Context) (domain.SentimentOverview, error) {
	return f.overview, f.err
}

func (f *feedStub) FeedReviews(
	_ context.Context, page, perPage int, filter domain.DashboardFilter,
) (domain.ReviewPage, error) {
	f.lastPage = page
	f.lastFilter = filter
	if f.err != nil {
		return domain.ReviewPage{}, f.err
	}
	out := f.page
	out.Page = page
	return out, nil
}

func newTestStore(g *gatewayMock, sess *sessionStoreMock) (*Store, *classifierStub, *feedStub) {
	cls := &classifierStub{}
	feed := &feedStub{}
	return New(g, sess, cls, feed), cls, feed
}
