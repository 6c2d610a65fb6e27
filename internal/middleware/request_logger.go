package middleware

import (
	"ecom/internal/logging"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// 1リクエスト1行
func RequestLogger(log *logging.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.RequestID != "" {
				fields = append(fields, zap.String("request_id", v.RequestID))
			}

			switch {
			case v.Error != nil:
				log.Failure("request failed", append(fields, zap.Error(v.Error))...)
			case v.Status >= 500:
				log.Failure("request", fields...)
			case v.Status >= 400:
				log.Warning("request", fields...)
			default:
				log.Success("request", fields...)
			}
			return nil
		},
	})
}
