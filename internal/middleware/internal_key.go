package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// 管理向けエンドポイント用。keyが空なら素通し。
func InternalAPIKey(key string) echo.MiddlewareFunc {
	return echomw.KeyAuthWithConfig(echomw.KeyAuthConfig{
		Skipper: func(echo.Context) bool {
			return key == ""
		},
		KeyLookup: "header:X-API-Key",
		Validator: func(got string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthenticated))
		},
	})
}
