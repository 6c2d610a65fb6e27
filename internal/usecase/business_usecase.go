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

type BusinessUsecase struct {
	businesses repo.BusinessRepository
	validator  InputValidator
	hasher     auth.PasswordHasher
	idGen      auth.IDGenerator
	clock      auth.Clock
	log        *logging.Logger
}

// DI
func NewBusinessUsecase(
	businesses repo.BusinessRepository,
	validator InputValidator,
	hasher auth.PasswordHasher,
	idGen auth.IDGenerator,
	clock auth.Clock,
	log *logging.Logger,
) *BusinessUsecase {
	return &BusinessUsecase{
		businesses: businesses,
		validator:  validator,
		hasher:     hasher,
		idGen:      idGen,
		clock:      clock,
		log:        log,
	}
}

// 事業者アカウントの登録
func (u *BusinessUsecase) Register(ctx context.Context, in AccountInput) (AccountView, error) {
	if err := u.validator.ValidateAccount(in); err != nil {
		return AccountView{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return AccountView{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	b := model.Business{
		Identity:   model.Identity{UUID: u.idGen.NewID()},
		Account:    newAccount(in, hashed),
		Timestamps: model.NewTimestamps(u.clock.Now()),
	}

	u.log.General("adding business account", zap.String("email", b.Email))
	if err := u.businesses.Create(ctx, &b); err != nil {
		u.log.Failure("business account creation failed", zap.String("email", b.Email), zap.Error(err))
		return AccountView{}, writeFailure(err)
	}

	u.log.Success("business account created", zap.String("email", b.Email), zap.String("uuid", b.UUID))
	return toAccountView(b.UUID, b.Account), nil
}

// 一覧（0件は404）
func (u *BusinessUsecase) List(ctx context.Context, in PageInput) ([]AccountView, error) {
	q, err := in.query()
	if err != nil {
		return nil, err
	}

	items, err := u.businesses.List(ctx, q)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}
	if len(items) == 0 {
		u.log.Warning("no businesses found", zap.Int("skip", q.Skip), zap.Int("limit", q.Limit))
		return nil, NewHTTPError(http.StatusNotFound, "No business present in database")
	}

	out := make([]AccountView, 0, len(items))
	for _, b := range items {
		out = append(out, toAccountView(b.UUID, b.Account))
	}
	return out, nil
}

// 自分のアカウントの部分更新
func (u *BusinessUsecase) UpdateMe(ctx context.Context, me model.Business, p AccountPatch) (AccountView, error) {
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
	if err := u.businesses.Update(ctx, &me); err != nil {
		u.log.Failure("business update failed", zap.String("email", email), zap.Error(err))
		return AccountView{}, writeFailure(err)
	}

	u.log.Success("business details updated", zap.String("email", email))
	return toAccountView(me.UUID, me.Account), nil
}

// 自分のアカウント削除（商品も消える）
func (u *BusinessUsecase) DeleteMe(ctx context.Context, me model.Business) (AccountView, error) {
	if err := u.businesses.DeleteByUUID(ctx, me.UUID); err != nil {
		u.log.Failure("business deletion failed", zap.String("email", me.Email), zap.Error(err))
		return AccountView{}, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}

	u.log.Success("business account deleted", zap.String("email", me.Email))
	return toAccountView(me.UUID, me.Account), nil
}
