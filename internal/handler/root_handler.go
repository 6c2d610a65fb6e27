package handler

import (
	"context"
	"net/http"
	"time"

	"ecom/internal/logging"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const apiVersion = "0.1.0"

type rootResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// DB疎通確認
type PingFunc func(ctx context.Context) error

type RootHandler struct {
	ping PingFunc
	log  *logging.Logger
}

// DI
func NewRootHandler(ping PingFunc, log *logging.Logger) *RootHandler {
	return &RootHandler{ping: ping, log: log}
}

func (h *RootHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/healthz", h.healthz)
}

func (h *RootHandler) root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Title:       "ECOM API",
		Description: "E-Commerce API for businesses and end users",
		Version:     apiVersion,
	})
}

func (h *RootHandler) healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.log.Failure("database ping failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
