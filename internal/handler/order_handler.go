package handler

import (
	"net/http"

	"ecom/internal/middleware"
	"ecom/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type OrderCreateRequest struct {
	OrderDate Date               `json:"order_date"`
	Items     []OrderItemRequest `json:"order_items"`
}

type orderResult struct {
	Action string            `json:"action"`
	Order  usecase.OrderView `json:"order"`
}

type orderInternalResult struct {
	Action string                    `json:"action"`
	Order  usecase.OrderInternalView `json:"order"`
}

type orderManyResult struct {
	Action string              `json:"action"`
	Orders []usecase.OrderView `json:"orders"`
}

type orderManyInternalResult struct {
	Action string                      `json:"action"`
	Orders []usecase.OrderInternalView `json:"orders"`
}

// /order
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(api *echo.Group, authn middleware.CustomerAuthenticator, internalKey string) {
	g := api.Group("/order")
	mw := middleware.CustomerAuth(authn)

	g.POST("/create", h.create, mw)
	g.POST("/add", h.create, mw)
	g.GET("/search", h.list, mw)
	g.GET("/search/uuid/:id", h.detail, mw)
	g.DELETE("/delete/uuid/:id", h.delete, mw)

	// 管理向け（全注文）
	g.GET("/search/internal", h.listInternal, middleware.InternalAPIKey(internalKey))
}

func (h *OrderHandler) create(c echo.Context) error {
	cu, ok := middleware.CurrentCustomer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, usecase.OrderItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), cu, usecase.PlaceOrderInput{
		OrderDate: req.OrderDate.Time,
		Items:     items,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, orderInternalResult{Action: actionPost, Order: out})
}

func (h *OrderHandler) list(c echo.Context) error {
	cu, ok := middleware.CurrentCustomer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListMine(c.Request().Context(), cu, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderManyResult{Action: actionGet, Orders: out})
}

func (h *OrderHandler) listInternal(c echo.Context) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.ListAll(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderManyInternalResult{Action: actionGet, Orders: out})
}

func (h *OrderHandler) detail(c echo.Context) error {
	cu, ok := middleware.CurrentCustomer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	out, err := h.uc.GetMine(c.Request().Context(), cu, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderResult{Action: actionGet, Order: out})
}

func (h *OrderHandler) delete(c echo.Context) error {
	cu, ok := middleware.CurrentCustomer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not Authenticated"})
	}

	out, err := h.uc.DeleteMine(c.Request().Context(), cu, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusAccepted, orderResult{Action: actionDelete, Order: out})
}
