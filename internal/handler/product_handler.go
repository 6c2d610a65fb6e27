package handler

import (
	"net/http"

	"ecom/internal/middleware"
	"ecom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductCreateRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	MfgDate     Date             `json:"mfg_date"`
	ExpDate     Date             `json:"exp_date"`
	Price       *decimal.Decimal `json:"price"`
}

// 省略・空文字の項目は変更しない（priceは0も反映）
type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	MfgDate     *Date            `json:"mfg_date"`
	ExpDate     *Date            `json:"exp_date"`
	Price       *decimal.Decimal `json:"price"`
}

type productResult struct {
	Action  string                      `json:"action"`
	Product usecase.ProductInternalView `json:"product"`
}

type productManyResult struct {
	Action   string                `json:"action"`
	Products []usecase.ProductView `json:"products"`
}

type productManyInternalResult struct {
	Action   string                        `json:"action"`
	Products []usecase.ProductInternalView `json:"products"`
}

// /product
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(api *echo.Group, authn middleware.BusinessAuthenticator) {
	g := api.Group("/product")
	mw := middleware.BusinessAuth(authn)

	// 公開
	g.GET("/search", h.list)
	g.GET("/search/name/:text", h.searchByText)

	// 事業者のみ
	g.POST("/create", h.create, mw)
	g.GET("/search/internal", h.listOwned, mw)
	g.GET("/search/uuid/:id", h.detail, mw)
	g.PUT("/update/uuid/:id", h.update, mw)
	g.DELETE("/delete/uuid/:id", h.delete, mw)
}

func (h *ProductHandler) create(c echo.Context) error {
	b, ok := middleware.CurrentBusiness(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.Price == nil {
		return badRequest(c, "price is required")
	}

	out, err := h.uc.Create(c.Request().Context(), b, usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		MfgDate:     req.MfgDate.Time,
		ExpDate:     req.ExpDate.Time,
		Price:       *req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, productResult{Action: actionPost, Product: out})
}

func (h *ProductHandler) list(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productManyResult{Action: actionGet, Products: out})
}

func (h *ProductHandler) searchByText(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.SearchByText(c.Request().Context(), c.Param("text"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productManyResult{Action: actionGet, Products: out})
}

func (h *ProductHandler) listOwned(c echo.Context) error {
	b, ok := middleware.CurrentBusiness(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListOwned(c.Request().Context(), b, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productManyInternalResult{Action: actionGet, Products: out})
}

func (h *ProductHandler) detail(c echo.Context) error {
	b, ok := middleware.CurrentBusiness(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	out, err := h.uc.GetOwned(c.Request().Context(), b, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, productResult{Action: actionGet, Product: out})
}

func (h *ProductHandler) update(c echo.Context) error {
	b, ok := middleware.CurrentBusiness(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Update(c.Request().Context(), b, c.Param("id"), usecase.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		MfgDate:     req.MfgDate.ptr(),
		ExpDate:     req.ExpDate.ptr(),
		Price:       req.Price,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusAccepted, productResult{Action: actionPut, Product: out})
}

func (h *ProductHandler) delete(c echo.Context) error {
	b, ok := middleware.CurrentBusiness(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	out, err := h.uc.Delete(c.Request().Context(), b, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusAccepted, productResult{Action: actionDelete, Product: out})
}
