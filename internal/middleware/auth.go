package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ecom/internal/domain/model"
	auth "ecom/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

const (
	CtxBusinessKey = "business" // model.Business
	CtxCustomerKey = "customer" // model.Customer
)

const msgNotAuthenticated = "Not Authenticated"

type BusinessAuthenticator interface {
	AuthenticateBusiness(ctx context.Context, cred auth.Credentials) (model.Business, error)
}

type CustomerAuthenticator interface {
	AuthenticateCustomer(ctx context.Context, cred auth.Credentials) (model.Customer, error)
}

// Basic / Bearer のどちらかで事業者を特定してcontextへ。
func BusinessAuth(a BusinessAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			b, err := a.AuthenticateBusiness(c.Request().Context(), credentialsFrom(c.Request()))
			if err != nil {
				return authFailure(c, err)
			}
			c.Set(CtxBusinessKey, b)
			return next(c)
		}
	}
}

// Basic / Bearer のどちらかで顧客を特定してcontextへ。
func CustomerAuth(a CustomerAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cu, err := a.AuthenticateCustomer(c.Request().Context(), credentialsFrom(c.Request()))
			if err != nil {
				return authFailure(c, err)
			}
			c.Set(CtxCustomerKey, cu)
			return next(c)
		}
	}
}

func CurrentBusiness(c echo.Context) (model.Business, bool) {
	b, ok := c.Get(CtxBusinessKey).(model.Business)
	return b, ok
}

func CurrentCustomer(c echo.Context) (model.Customer, bool) {
	cu, ok := c.Get(CtxCustomerKey).(model.Customer)
	return cu, ok
}

// Authorizationヘッダから Basic / Bearer を取り出す
func credentialsFrom(r *http.Request) auth.Credentials {
	var cred auth.Credentials
	if email, password, ok := r.BasicAuth(); ok {
		cred.HasBasic = true
		cred.Email = email
		cred.Password = password
		return cred
	}

	parts := strings.SplitN(r.Header.Get(echo.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		cred.BearerToken = strings.TrimSpace(parts[1])
	}
	return cred
}

func authFailure(c echo.Context, err error) error {
	if errors.Is(err, auth.ErrUnauthenticated) {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="ecom"`)
		return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthenticated))
	}
	return c.JSON(http.StatusInternalServerError, errorJSON("An unexpected database error occurred."))
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
