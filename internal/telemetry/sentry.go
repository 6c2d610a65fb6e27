package telemetry

import (
	"time"

	"ecom/internal/config"

	"github.com/getsentry/sentry-go"
)

const sentryFlushTimeout = 2 * time.Second

// SENTRY_DSNが空なら何もしない
func InitSentry(cfg config.Config) (func(), error) {
	if cfg.SentryDSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.GoEnv,
		Release:     cfg.ServiceName + "@" + serviceVersion,
	})
	if err != nil {
		return nil, err
	}
	return func() { sentry.Flush(sentryFlushTimeout) }, nil
}
