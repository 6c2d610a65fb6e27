package handler

import (
	"context"

	"ecom/internal/domain/model"
	repo "ecom/internal/repository"
	auth "ecom/internal/usecase/auth_usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Authenticator stub
// =====================

type authStub struct {
	business *model.Business
	customer *model.Customer
}

func (a authStub) AuthenticateBusiness(ctx context.Context, cred auth.Credentials) (model.Business, error) {
	if a.business == nil {
		return model.Business{}, auth.ErrUnauthenticated
	}
	return *a.business, nil
}

func (a authStub) AuthenticateCustomer(ctx context.Context, cred auth.Credentials) (model.Customer, error) {
	if a.customer == nil {
		return model.Customer{}, auth.ErrUnauthenticated
	}
	return *a.customer, nil
}

// =====================
// Repository mocks (handler向け)
// =====================

type HBusinessRepoMock struct{ mock.Mock }

func (m *HBusinessRepoMock) Create(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *HBusinessRepoMock) List(ctx context.Context, q repo.PageQuery) ([]model.Business, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Business)
	return items, args.Error(1)
}

func (m *HBusinessRepoMock) FindByUUID(ctx context.Context, uuid string) (model.Business, error) {
	panic("not used in handler tests")
}

func (m *HBusinessRepoMock) FindByEmail(ctx context.Context, email string) (model.Business, error) {
	panic("not used in handler tests")
}

func (m *HBusinessRepoMock) FindByOAuthEmail(ctx context.Context, email string) (model.Business, error) {
	panic("not used in handler tests")
}

func (m *HBusinessRepoMock) Update(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *HBusinessRepoMock) DeleteByUUID(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

type HProductRepoMock struct{ mock.Mock }

func (m *HProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *HProductRepoMock) List(ctx context.Context, q repo.PageQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *HProductRepoMock) SearchByText(ctx context.Context, text string, q repo.PageQuery) ([]model.Product, error) {
	args := m.Called(ctx, text, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *HProductRepoMock) ListByBusiness(ctx context.Context, businessID string, q repo.PageQuery) ([]model.Product, error) {
	panic("not used in handler tests")
}

func (m *HProductRepoMock) FindByUUID(ctx context.Context, uuid string) (model.Product, error) {
	args := m.Called(ctx, uuid)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *HProductRepoMock) FindOwned(ctx context.Context, uuid string, businessID string) (model.Product, error) {
	args := m.Called(ctx, uuid, businessID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *HProductRepoMock) Update(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *HProductRepoMock) DeleteOwned(ctx context.Context, uuid string, businessID string) error {
	panic("not used in handler tests")
}

type HOrderRepoMock struct{ mock.Mock }

func (m *HOrderRepoMock) Create(ctx context.Context, o *model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *HOrderRepoMock) UpdateTotal(ctx context.Context, uuid string, total decimal.Decimal) error {
	args := m.Called(ctx, uuid, total)
	return args.Error(0)
}

func (m *HOrderRepoMock) ListByCustomer(ctx context.Context, customerID string, q repo.PageQuery) ([]model.Order, error) {
	panic("not used in handler tests")
}

func (m *HOrderRepoMock) ListAll(ctx context.Context, q repo.PageQuery) ([]model.Order, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *HOrderRepoMock) FindOwned(ctx context.Context, uuid string, customerID string) (model.Order, error) {
	panic("not used in handler tests")
}

func (m *HOrderRepoMock) DeleteOwned(ctx context.Context, uuid string, customerID string) error {
	panic("not used in handler tests")
}

type HOrderDetailRepoMock struct{ mock.Mock }

func (m *HOrderDetailRepoMock) CreateBulk(ctx context.Context, orderID string, details []model.OrderDetail) error {
	args := m.Called(ctx, orderID, details)
	return args.Error(0)
}

func (m *HOrderDetailRepoMock) ListByOrderIDs(ctx context.Context, orderIDs []string) ([]model.OrderDetail, error) {
	panic("not used in handler tests")
}

type hTxRepos struct {
	orders   repo.OrderRepository
	details  repo.OrderDetailRepository
	products repo.ProductRepository
}

func (r *hTxRepos) Orders() repo.OrderRepository             { return r.orders }
func (r *hTxRepos) OrderDetails() repo.OrderDetailRepository { return r.details }
func (r *hTxRepos) Products() repo.ProductRepository         { return r.products }

// fnをそのまま実行
type hTxManager struct{ repos repo.TxRepos }

func (m hTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}
