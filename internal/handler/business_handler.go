package handler

import (
	"net/http"

	"ecom/internal/middleware"
	"ecom/internal/usecase"

	"github.com/labstack/echo/v4"
)

type businessResult struct {
	Action   string              `json:"action"`
	Business usecase.AccountView `json:"business"`
}

type businessManyResult struct {
	Action     string                `json:"action"`
	Businesses []usecase.AccountView `json:"businesses"`
}

// /business
type BusinessHandler struct {
	uc *usecase.BusinessUsecase
}

// DI
func NewBusinessHandler(uc *usecase.BusinessUsecase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

func (h *BusinessHandler) RegisterRoutes(api *echo.Group, authn middleware.BusinessAuthenticator) {
	g := api.Group("/business")
	mw := middleware.BusinessAuth(authn)

	g.POST("/create", h.create)
	g.GET("/search", h.list)
	g.GET("/me", h.me, mw)
	g.PUT("/update/me", h.updateMe, mw)
	g.DELETE("/delete/me", h.deleteMe, mw)
}

func (h *BusinessHandler) create(c echo.Context) error {
	var req AccountCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Register(c.Request().Context(), req.input())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, businessResult{Action: actionPost, Business: out})
}

func (h *BusinessHandler) list(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, businessManyResult{Action: actionGet, Businesses: out})
}

func (h *BusinessHandler) me(c echo.Context) error {
	b, ok := middleware.CurrentBusiness(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}
	return c.JSON(http.StatusOK, meResponse{Action: actionGet, Email: b.Email})
}

func (h *BusinessHandler) updateMe(c echo.Context) error {
	b, ok := middleware.CurrentBusiness(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	var req AccountUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.UpdateMe(c.Request().Context(), b, req.patch())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusAccepted, businessResult{Action: actionPut, Business: out})
}

func (h *BusinessHandler) deleteMe(c echo.Context) error {
	b, ok := middleware.CurrentBusiness(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	out, err := h.uc.DeleteMe(c.Request().Context(), b)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusAccepted, businessResult{Action: actionDelete, Business: out})
}
