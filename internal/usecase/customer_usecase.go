package usecase

import (
	"context"
	"net/http"

	"ecom/internal/domain/model"
	"ecom/internal/logging"
	repo "ecom/internal/repository"
	auth "ecom/internal/usecase/auth_usecase"

	"go.uber.org/zap"
)

type CustomerUsecase struct {
	customers repo.CustomerRepository
	validator InputValidator
	hasher    auth.PasswordHasher
	idGen     auth.IDGenerator
	clock     auth.Clock
	log       *logging.Logger
}

// DI
func NewCustomerUsecase(
	customers repo.CustomerRepository,
	validator InputValidator,
	hasher auth.PasswordHasher,
	idGen auth.IDGenerator,
	clock auth.Clock,
	log *logging.Logger,
) *CustomerUsecase {
	return &CustomerUsecase{
		customers: customers,
		validator: validator,
		hasher:    hasher,
		idGen:     idGen,
		clock:     clock,
		log:       log,
	}
}

// 顧客アカウントの登録
func (u *CustomerUsecase) Register(ctx context.Context, in AccountInput) (AccountView, error) {
	if err := u.validator.ValidateAccount(in); err != nil {
		return AccountView{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return AccountView{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	c := model.Customer{
		Identity:   model.Identity{UUID: u.idGen.NewID()},
		Account:    newAccount(in, hashed),
		Timestamps: model.NewTimestamps(u.clock.Now()),
	}

	u.log.General("adding customer account", zap.String("email", c.Email))
	if err := u.customers.Create(ctx, &c); err != nil {
		u.log.Failure("customer account creation failed", zap.String("email", c.Email), zap.Error(err))
		return AccountView{}, writeFailure(err)
	}

	u.log.Success("customer account created", zap.String("email", c.Email), zap.String("uuid", c.UUID))
	return toAccountView(c.UUID, c.Account), nil
}

// 一覧（0件は404）
func (u *CustomerUsecase) List(ctx context.Context, in PageInput) ([]AccountView, error) {
	q, err := in.query()
	if err != nil {
		return nil, err
	}

	items, err := u.customers.List(ctx, q)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}
	if len(items) == 0 {
		u.log.Warning("no customers found", zap.Int("skip", q.Skip), zap.Int("limit", q.Limit))
		return nil, NewHTTPError(http.StatusNotFound, "No customer present in database")
	}

	out := make([]AccountView, 0, len(items))
	for _, c := range items {
		out = append(out, toAccountView(c.UUID, c.Account))
	}
	return out, nil
}

// 自分のアカウントの部分更新
func (u *CustomerUsecase) UpdateMe(ctx context.Context, me model.Customer, p AccountPatch) (AccountView, error) {
	if err := u.validator.ValidateAccountPatch(p); err != nil {
		return AccountView{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	email := me.Email
	changed, err := applyAccountPatch(&me.Account, p, u.hasher)
	if err != nil {
		return AccountView{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if !changed {
		return toAccountView(me.UUID, me.Account), nil
	}

	me.UpdateDate = u.clock.Now()
	if err := u.customers.Update(ctx, &me); err != nil {
		u.log.Failure("customer update failed", zap.String("email", email), zap.Error(err))
		return AccountView{}, writeFailure(err)
	}

	u.log.Success("customer details updated", zap.String("email", email))
	return toAccountView(me.UUID, me.Account), nil
}

// 自分のアカウント削除（注文も消える）
func (u *CustomerUsecase) DeleteMe(ctx context.Context, me model.Customer) (AccountView, error) {
	if err := u.customers.DeleteByUUID(ctx, me.UUID); err != nil {
		u.log.Failure("customer deletion failed", zap.String("email", me.Email), zap.Error(err))
		return AccountView{}, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}

	u.log.Success("customer account deleted", zap.String("email", me.Email))
	return toAccountView(me.UUID, me.Account), nil
}
