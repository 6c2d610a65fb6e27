package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ecom/internal/domain/model"
	"ecom/internal/logging"
	repo "ecom/internal/repository"

	"go.uber.org/zap"
)

// Basic も Bearer も通らなかった
var ErrUnauthenticated = errors.New("not authenticated")

// リクエストから取り出した認証情報
type Credentials struct {
	HasBasic    bool
	Email       string
	Password    string
	BearerToken string
}

// Basic → OIDC の順に試して呼び出し元を特定する
type Authenticator struct {
	businesses repo.BusinessRepository
	customers  repo.CustomerRepository
	verifier   PasswordVerifier
	idp        IdentityProvider
	idGen      IDGenerator
	clock      Clock
	provider   string
	log        *logging.Logger
}

// DI（idpがnilならBearerは使わない）
func NewAuthenticator(
	businesses repo.BusinessRepository,
	customers repo.CustomerRepository,
	verifier PasswordVerifier,
	idp IdentityProvider,
	idGen IDGenerator,
	clock Clock,
	provider string,
	log *logging.Logger,
) *Authenticator {
	return &Authenticator{
		businesses: businesses,
		customers:  customers,
		verifier:   verifier,
		idp:        idp,
		idGen:      idGen,
		clock:      clock,
		provider:   provider,
		log:        log,
	}
}

func (a *Authenticator) AuthenticateBusiness(ctx context.Context, cred Credentials) (model.Business, error) {
	if cred.HasBasic {
		b, err := a.businesses.FindByEmail(ctx, strings.TrimSpace(cred.Email))
		switch {
		case err == nil:
			if a.verifier.Verify(cred.Password, b.Password) {
				return b, nil
			}
			a.log.Warning("basic auth password mismatch", zap.String("email", cred.Email))
		case errors.Is(err, repo.ErrNotFound):
			a.log.Warning("basic auth unknown business", zap.String("email", cred.Email))
		default:
			return model.Business{}, fmt.Errorf("find business: %w", err)
		}
	}

	user, ok := a.exchange(ctx, cred)
	if !ok {
		return model.Business{}, ErrUnauthenticated
	}
	return a.linkBusiness(ctx, user)
}

func (a *Authenticator) AuthenticateCustomer(ctx context.Context, cred Credentials) (model.Customer, error) {
	if cred.HasBasic {
		c, err := a.customers.FindByEmail(ctx, strings.TrimSpace(cred.Email))
		switch {
		case err == nil:
			if a.verifier.Verify(cred.Password, c.Password) {
				return c, nil
			}
			a.log.Warning("basic auth password mismatch", zap.String("email", cred.Email))
		case errors.Is(err, repo.ErrNotFound):
			a.log.Warning("basic auth unknown customer", zap.String("email", cred.Email))
		default:
			return model.Customer{}, fmt.Errorf("find customer: %w", err)
		}
	}

	user, ok := a.exchange(ctx, cred)
	if !ok {
		return model.Customer{}, ErrUnauthenticated
	}
	return a.linkCustomer(ctx, user)
}

// bearerトークンをuserinfoに交換
func (a *Authenticator) exchange(ctx context.Context, cred Credentials) (OIDCUser, bool) {
	if a.idp == nil || cred.BearerToken == "" {
		return OIDCUser{}, false
	}
	user, err := a.idp.UserInfo(ctx, cred.BearerToken)
	if err != nil {
		a.log.Warning("oauth token validation failed", zap.Error(err))
		return OIDCUser{}, false
	}
	a.log.Success("oauth token validated", zap.String("email", user.Email))
	return user, true
}

// email一致 → OAuth情報を付与、oauth_email一致 → そのまま、無ければ新規作成
func (a *Authenticator) linkBusiness(ctx context.Context, user OIDCUser) (model.Business, error) {
	now := a.clock.Now()

	b, err := a.businesses.FindByEmail(ctx, user.Email)
	if err == nil {
		a.log.General("linking oauth to existing business", zap.String("email", user.Email))
		linkAccount(&b.Account, a.provider, user)
		b.UpdateDate = now
		if err := a.businesses.Update(ctx, &b); err != nil {
			a.log.Failure("failed to link oauth to business", zap.String("email", user.Email), zap.Error(err))
			return model.Business{}, fmt.Errorf("update business: %w", err)
		}
		return b, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Business{}, fmt.Errorf("find business: %w", err)
	}

	b, err = a.businesses.FindByOAuthEmail(ctx, user.Email)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Business{}, fmt.Errorf("find business: %w", err)
	}

	a.log.General("creating business via oauth", zap.String("email", user.Email))
	b = model.Business{
		Identity:   model.Identity{UUID: a.idGen.NewID()},
		Account:    newOAuthAccount(a.provider, user),
		Timestamps: model.NewTimestamps(now),
	}
	if err := a.businesses.Create(ctx, &b); err != nil {
		a.log.Failure("failed to create business via oauth", zap.String("email", user.Email), zap.Error(err))
		return model.Business{}, fmt.Errorf("create business: %w", err)
	}
	return b, nil
}

func (a *Authenticator) linkCustomer(ctx context.Context, user OIDCUser) (model.Customer, error) {
	now := a.clock.Now()

	c, err := a.customers.FindByEmail(ctx, user.Email)
	if err == nil {
		a.log.General("linking oauth to existing customer", zap.String("email", user.Email))
		linkAccount(&c.Account, a.provider, user)
		c.UpdateDate = now
		if err := a.customers.Update(ctx, &c); err != nil {
			a.log.Failure("failed to link oauth to customer", zap.String("email", user.Email), zap.Error(err))
			return model.Customer{}, fmt.Errorf("update customer: %w", err)
		}
		return c, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, fmt.Errorf("find customer: %w", err)
	}

	c, err = a.customers.FindByOAuthEmail(ctx, user.Email)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Customer{}, fmt.Errorf("find customer: %w", err)
	}

	a.log.General("creating customer via oauth", zap.String("email", user.Email))
	c = model.Customer{
		Identity:   model.Identity{UUID: a.idGen.NewID()},
		Account:    newOAuthAccount(a.provider, user),
		Timestamps: model.NewTimestamps(now),
	}
	if err := a.customers.Create(ctx, &c); err != nil {
		a.log.Failure("failed to create customer via oauth", zap.String("email", user.Email), zap.Error(err))
		return model.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

func linkAccount(acc *model.Account, provider string, user OIDCUser) {
	acc.OAuthProvider = provider
	acc.OAuthID = user.Sub
	acc.OAuthEmail = user.Email
	acc.IsVerified = true
}

// OAuthのメールは検証済みとして扱う
func newOAuthAccount(provider string, user OIDCUser) model.Account {
	return model.Account{
		Email:           user.Email,
		Name:            user.Name,
		IsVerified:      true,
		OAuthProvider:   provider,
		OAuthID:         user.Sub,
		OAuthEmail:      user.Email,
		CreatedViaOAuth: true,
	}
}
