package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configはアプリ全体の設定
type Config struct {
	Port     string // サーバーポート（8080）
	GoEnv    string // dev/prod
	LogLevel string // debug/info/warn/error

	DatabaseURL      string // あれば POSTGRES_* より優先
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration

	BcryptCost int

	OIDCProvider    string // oauth_provider に保存する名前
	OIDCUserinfoURL string
	OIDCTimeout     time.Duration

	RedisAddr        string // 空ならuserinfoキャッシュなし
	RedisPassword    string
	RedisDB          int
	UserinfoCacheTTL time.Duration

	OTLPEndpoint string // 空ならtrace/metricは送らない
	ServiceName  string

	SentryDSN string // 空ならSentryへ送らない

	InternalAPIKey string // 空なら /order/search/internal は認証なし
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GO_ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "ecom")
	v.SetDefault("POSTGRES_SSLMODE", "disable")

	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")

	v.SetDefault("BCRYPT_COST", 12)

	v.SetDefault("OIDC_PROVIDER", "google")
	v.SetDefault("OIDC_USERINFO_URL", "https://openidconnect.googleapis.com/v1/userinfo")
	v.SetDefault("OIDC_TIMEOUT", "5s")

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("USERINFO_CACHE_TTL", "5m")

	v.SetDefault("SERVICE_NAME", "ecom-api")
}

// Loadは .env（任意）と環境変数から読む
func Load() (Config, error) {
	// .envが無いのは正常
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Port:     strings.TrimPrefix(v.GetString("PORT"), ":"),
		GoEnv:    v.GetString("GO_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),

		DatabaseURL:      v.GetString("DATABASE_URL"),
		PostgresHost:     v.GetString("POSTGRES_HOST"),
		PostgresPort:     v.GetInt("POSTGRES_PORT"),
		PostgresUser:     v.GetString("POSTGRES_USER"),
		PostgresPassword: v.GetString("POSTGRES_PASSWORD"),
		PostgresDB:       v.GetString("POSTGRES_DB"),
		PostgresSSLMode:  v.GetString("POSTGRES_SSLMODE"),

		DBMaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),

		BcryptCost: v.GetInt("BCRYPT_COST"),

		OIDCProvider:    v.GetString("OIDC_PROVIDER"),
		OIDCUserinfoURL: v.GetString("OIDC_USERINFO_URL"),
		OIDCTimeout:     v.GetDuration("OIDC_TIMEOUT"),

		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		UserinfoCacheTTL: v.GetDuration("USERINFO_CACHE_TTL"),

		OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:  v.GetString("SERVICE_NAME"),

		SentryDSN: v.GetString("SENTRY_DSN"),

		InternalAPIKey: v.GetString("INTERNAL_API_KEY"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.DatabaseURL == "" {
		if cfg.PostgresHost == "" {
			return Config{}, fmt.Errorf("POSTGRES_HOST is required")
		}
		if cfg.PostgresPort <= 0 {
			return Config{}, fmt.Errorf("POSTGRES_PORT must be number")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if cfg.OIDCUserinfoURL == "" {
		return Config{}, fmt.Errorf("OIDC_USERINFO_URL is required")
	}
	if cfg.OIDCTimeout <= 0 {
		return Config{}, fmt.Errorf("OIDC_TIMEOUT must be positive")
	}

	return cfg, nil
}

// DSNはDATABASE_URLがあればそれを返す
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}
