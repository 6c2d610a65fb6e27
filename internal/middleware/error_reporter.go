package middleware

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

// 5xx・panicをSentryへ送る。hubにclientが無ければ何もしない。
func ErrorReporter(base *sentry.Hub) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if base.Client() == nil {
				return next(c)
			}

			hub := base.Clone()
			hub.Scope().SetRequest(c.Request())

			defer func() {
				if r := recover(); r != nil {
					hub.RecoverWithContext(c.Request().Context(), r)
					// Recoverミドルウェアに任せる
					panic(r)
				}
			}()

			err := next(c)
			switch {
			case err != nil:
				hub.CaptureException(err)
			case c.Response().Status >= http.StatusInternalServerError:
				hub.CaptureMessage(fmt.Sprintf("%d %s %s", c.Response().Status, c.Request().Method, c.Path()))
			}
			return err
		}
	}
}
