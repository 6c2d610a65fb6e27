package server

import (
	"ecom/internal/handler"
	"ecom/internal/middleware"

	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/v1"

// Basic / Bearer で事業者・顧客を特定する
type Authenticator interface {
	middleware.BusinessAuthenticator
	middleware.CustomerAuthenticator
}

type Handlers struct {
	Root     *handler.RootHandler
	Business *handler.BusinessHandler
	Customer *handler.CustomerHandler
	Product  *handler.ProductHandler
	Order    *handler.OrderHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers, authn Authenticator, internalKey string) {
	h.Root.RegisterRoutes(e)

	api := e.Group(apiPrefix)
	h.Business.RegisterRoutes(api, authn)
	h.Customer.RegisterRoutes(api, authn)
	h.Product.RegisterRoutes(api, authn)
	h.Order.RegisterRoutes(api, authn, internalKey)
}
