package handler

import (
	"net/http"

	"ecom/internal/middleware"
	"ecom/internal/usecase"

	"github.com/labstack/echo/v4"
)

type customerResult struct {
	Action   string              `json:"action"`
	Customer usecase.AccountView `json:"customer"`
}

type customerManyResult struct {
	Action    string                `json:"action"`
	Customers []usecase.AccountView `json:"customers"`
}

// /customer
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

// DI
func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) RegisterRoutes(api *echo.Group, authn middleware.CustomerAuthenticator) {
	g := api.Group("/customer")
	mw := middleware.CustomerAuth(authn)

	g.POST("/create", h.create)
	g.GET("/search", h.list)
	g.GET("/me", h.me, mw)
	g.PUT("/update/me", h.updateMe, mw)
	g.DELETE("/delete/me", h.deleteMe, mw)
}

func (h *CustomerHandler) create(c echo.Context) error {
	var req AccountCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Register(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, customerResult{Action: actionPost, Customer: out})
}

func (h *CustomerHandler) list(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customerManyResult{Action: actionGet, Customers: out})
}

func (h *CustomerHandler) me(c echo.Context) error {
	cu, ok := middleware.CurrentCustomer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}
	return c.JSON(http.StatusOK, meResponse{Action: actionGet, Email: cu.Email})
}

func (h *CustomerHandler) updateMe(c echo.Context) error {
	cu, ok := middleware.CurrentCustomer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	var req AccountUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.UpdateMe(c.Request().Context(), cu, req.patch())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusAccepted, customerResult{Action: actionPut, Customer: out})
}

func (h *CustomerHandler) deleteMe(c echo.Context) error {
	cu, ok := middleware.CurrentCustomer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	out, err := h.uc.DeleteMe(c.Request().Context(), cu)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusAccepted, customerResult{Action: actionDelete, Customer: out})
}
