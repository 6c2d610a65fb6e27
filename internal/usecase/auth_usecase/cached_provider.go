package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"ecom/internal/logging"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// userinfoのキャッシュ
type UserInfoCache interface {
	Get(ctx context.Context, key string) (OIDCUser, bool, error)
	Set(ctx context.Context, key string, u OIDCUser, ttl time.Duration) error
}

// 同じトークンで毎回プロバイダへ問い合わせないためのラッパー
type CachedIdentityProvider struct {
	next  IdentityProvider
	cache UserInfoCache
	ttl   time.Duration
	clock Clock
	log   *logging.Logger
}

func NewCachedIdentityProvider(next IdentityProvider, cache UserInfoCache, ttl time.Duration, clock Clock, log *logging.Logger) *CachedIdentityProvider {
	return &CachedIdentityProvider{next: next, cache: cache, ttl: ttl, clock: clock, log: log}
}

func (p *CachedIdentityProvider) UserInfo(ctx context.Context, token string) (OIDCUser, error) {
	key := userInfoCacheKey(token)

	u, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		// キャッシュ障害は認証失敗にしない
		p.log.Warning("userinfo cache read failed", zap.Error(err))
	} else if ok {
		return u, nil
	}

	u, err = p.next.UserInfo(ctx, token)
	if err != nil {
		return OIDCUser{}, err
	}

	if ttl := p.ttlFor(token); ttl > 0 {
		if err := p.cache.Set(ctx, key, u, ttl); err != nil {
			p.log.Warning("userinfo cache write failed", zap.Error(err))
		}
	}
	return u, nil
}

// JWT形式ならexpまでに縮める
func (p *CachedIdentityProvider) ttlFor(token string) time.Duration {
	ttl := p.ttl
	if exp, ok := tokenExpiry(token); ok {
		if left := exp.Sub(p.clock.Now()); left < ttl {
			ttl = left
		}
	}
	return ttl
}

// 署名は検証しない（検証はプロバイダ側）
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}

func userInfoCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "oidc:userinfo:" + hex.EncodeToString(sum[:])
}
