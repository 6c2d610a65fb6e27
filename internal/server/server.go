package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ecom/internal/logging"
	"ecom/internal/middleware"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// 共通middleware付きのecho
func New(log *logging.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(middleware.ErrorReporter(sentry.CurrentHub()))
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))

	return e
}

// ctxが終わるまで待ち受け、その後graceful shutdown
func Start(ctx context.Context, e *echo.Echo, addr string, log *logging.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		log.General("server starting", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			log.Failure("server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
		log.General("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Failure("server shutdown error", zap.Error(err))
		return err
	}

	log.Success("server stopped")
	return nil
}
