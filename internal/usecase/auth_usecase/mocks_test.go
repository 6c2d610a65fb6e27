package auth

import (
	"context"
	"time"

	"ecom/internal/domain/model"
	repo "ecom/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type AuthBusinessRepoMock struct{ mock.Mock }

func (m *AuthBusinessRepoMock) Create(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *AuthBusinessRepoMock) List(ctx context.Context, q repo.PageQuery) ([]model.Business, error) {
	panic("not used in auth tests")
}

func (m *AuthBusinessRepoMock) FindByUUID(ctx context.Context, uuid string) (model.Business, error) {
	panic("not used in auth tests")
}

func (m *AuthBusinessRepoMock) FindByEmail(ctx context.Context, email string) (model.Business, error) {
	args := m.Called(ctx, email)
	b, _ := args.Get(0).(model.Business)
	return b, args.Error(1)
}

func (m *AuthBusinessRepoMock) FindByOAuthEmail(ctx context.Context, email string) (model.Business, error) {
	args := m.Called(ctx, email)
	b, _ := args.Get(0).(model.Business)
	return b, args.Error(1)
}

func (m *AuthBusinessRepoMock) Update(ctx context.Context, b *model.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *AuthBusinessRepoMock) DeleteByUUID(ctx context.Context, uuid string) error {
	panic("not used in auth tests")
}

type AuthCustomerRepoMock struct{ mock.Mock }

func (m *AuthCustomerRepoMock) Create(ctx context.Context, c *model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *AuthCustomerRepoMock) List(ctx context.Context, q repo.PageQuery) ([]model.Customer, error) {
	panic("not used in auth tests")
}

func (m *AuthCustomerRepoMock) FindByUUID(ctx context.Context, uuid string) (model.Customer, error) {
	panic("not used in auth tests")
}

func (m *AuthCustomerRepoMock) FindByEmail(ctx context.Context, email string) (model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *AuthCustomerRepoMock) FindByOAuthEmail(ctx context.Context, email string) (model.Customer, error) {
	args := m.Called(ctx, email)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *AuthCustomerRepoMock) Update(ctx context.Context, c *model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *AuthCustomerRepoMock) DeleteByUUID(ctx context.Context, uuid string) error {
	panic("not used in auth tests")
}

var (
	_ repo.BusinessRepository = (*AuthBusinessRepoMock)(nil)
	_ repo.CustomerRepository = (*AuthCustomerRepoMock)(nil)
)

type IdentityProviderMock struct{ mock.Mock }

func (m *IdentityProviderMock) UserInfo(ctx context.Context, token string) (OIDCUser, error) {
	args := m.Called(ctx, token)
	u, _ := args.Get(0).(OIDCUser)
	return u, args.Error(1)
}

type UserInfoCacheMock struct{ mock.Mock }

func (m *UserInfoCacheMock) Get(ctx context.Context, key string) (OIDCUser, bool, error) {
	args := m.Called(ctx, key)
	u, _ := args.Get(0).(OIDCUser)
	return u, args.Bool(1), args.Error(2)
}

func (m *UserInfoCacheMock) Set(ctx context.Context, key string, u OIDCUser, ttl time.Duration) error {
	args := m.Called(ctx, key, u, ttl)
	return args.Error(0)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedIDGen struct{ id string }

func (g fixedIDGen) NewID() string { return g.id }
