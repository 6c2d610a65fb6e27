package usecase

import (
	"context"
	"fmt"
	"time"

	"ecom/internal/domain/model"
	repo "ecom/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type BusinessRepoMock struct{ mock.Mock }

func (m *BusinessRepoMock) Create(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BusinessRepoMock) List(ctx context.Context, q repo.PageQuery) ([]model.Business, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Business)
	return items, args.Error(1)
}

func (m *BusinessRepoMock) FindByUUID(ctx context.Context, uuid string) (model.Business, error) {
	args := m.Called(ctx, uuid)
	b, _ := args.Get(0).(model.Business)
	return b, args.Error(1)
}

func (m *BusinessRepoMock) FindByEmail(ctx context.Context, email string) (model.Business, error) {
	args := m.Called(ctx, email)
	b, _ := args.Get(0).(model.Business)
	return b, args.Error(1)
}

func (m *BusinessRepoMock) FindByOAuthEmail(ctx context.Context, email string) (model.Business, error) {
	args := m.Called(ctx, email)
	b, _ := args.Get(0).(model.Business)
	return b, args.Error(1)
}

func (m *BusinessRepoMock) Update(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BusinessRepoMock) DeleteByUUID(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) Create(ctx context.Context, c *model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) List(ctx context.Context, q repo.PageQuery) ([]model.Customer, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustomerRepoMock) FindByUUID(ctx context.Context, uuid string) (model.Customer, error) {
	args := m.Called(ctx, uuid)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindByEmail(ctx context.Context, email string) (model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) FindByOAuthEmail(ctx context.Context, email string) (model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c *model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) DeleteByUUID(ctx context.Context, uuid string) error {
	args := m.Called(ctx, uuid)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) List(ctx context.Context, q repo.PageQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) SearchByText(ctx context.Context, text string, q repo.PageQuery) ([]model.Product, error) {
	args := m.Called(ctx, text, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListByBusiness(ctx context.Context, businessID string, q repo.PageQuery) ([]model.Product, error) {
	args := m.Called(ctx, businessID, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByUUID(ctx context.Context, uuid string) (model.Product, error) {
	args := m.Called(ctx, uuid)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindOwned(ctx context.Context, uuid string, businessID string) (model.Product, error) {
	args := m.Called(ctx, uuid, businessID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) DeleteOwned(ctx context.Context, uuid string, businessID string) error {
	args := m.Called(ctx, uuid, businessID)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, o *model.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateTotal(ctx context.Context, uuid string, total decimal.Decimal) error {
	args := m.Called(ctx, uuid, total)
	return args.Error(0)
}

func (m *OrderRepoMock) ListByCustomer(ctx context.Context, customerID string, q repo.PageQuery) ([]model.Order, error) {
	args := m.Called(ctx, customerID, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context, q repo.PageQuery) ([]model.Order, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Error(1)
}

func (m *OrderRepoMock) FindOwned(ctx context.Context, uuid string, customerID string) (model.Order, error) {
	args := m.Called(ctx, uuid, customerID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) DeleteOwned(ctx context.Context, uuid string, customerID string) error {
	args := m.Called(ctx, uuid, customerID)
	return args.Error(0)
}

type OrderDetailRepoMock struct{ mock.Mock }

func (m *OrderDetailRepoMock) CreateBulk(ctx context.Context, orderID string, details []model.OrderDetail) error {
	args := m.Called(ctx, orderID, details)
	return args.Error(0)
}

func (m *OrderDetailRepoMock) ListByOrderIDs(ctx context.Context, orderIDs []string) ([]model.OrderDetail, error) {
	args := m.Called(ctx, orderIDs)
	items, _ := args.Get(0).([]model.OrderDetail)
	return items, args.Error(1)
}

type TxReposStub struct {
	orders   repo.OrderRepository
	details  repo.OrderDetailRepository
	products repo.ProductRepository
}

func (r *TxReposStub) Orders() repo.OrderRepository             { return r.orders }
func (r *TxReposStub) OrderDetails() repo.OrderDetailRepository { return r.details }
func (r *TxReposStub) Products() repo.ProductRepository         { return r.products }

// fnをそのまま実行し、返ったerrorを返す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

// =====================
// Stubs
// =====================

type validatorStub struct{ err error }

func (v validatorStub) ValidateAccount(AccountInput) error      { return v.err }
func (v validatorStub) ValidateAccountPatch(AccountPatch) error { return v.err }
func (v validatorStub) ValidateProduct(ProductInput) error      { return v.err }
func (v validatorStub) ValidateProductPatch(ProductPatch) error { return v.err }
func (v validatorStub) ValidateOrder(PlaceOrderInput) error     { return v.err }

type hasherStub struct{}

func (hasherStub) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// 00000001, 00000002, ... を順に返す
type seqIDGen struct{ n int }

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("%08x", g.n)
}
