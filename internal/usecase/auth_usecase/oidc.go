package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// プロバイダがトークンを受け付けなかった
var ErrTokenRejected = errors.New("oauth token rejected")

// userinfoエンドポイントの応答のうち使う項目
type OIDCUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Sub   string `json:"sub"`
}

// bearerトークンを本人情報に交換する
type IdentityProvider interface {
	UserInfo(ctx context.Context, token string) (OIDCUser, error)
}

type OIDCClient struct {
	http        *resty.Client
	userinfoURL string
}

func NewOIDCClient(userinfoURL string, timeout time.Duration) *OIDCClient {
	return &OIDCClient{
		http:        resty.New().SetTimeout(timeout),
		userinfoURL: userinfoURL,
	}
}

func (c *OIDCClient) UserInfo(ctx context.Context, token string) (OIDCUser, error) {
	var u OIDCUser

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Accept", "application/json").
		SetResult(&u).
		Get(c.userinfoURL)
	if err != nil {
		return OIDCUser{}, fmt.Errorf("userinfo request: %w", err)
	}
	if resp.IsError() {
		return OIDCUser{}, fmt.Errorf("%w: status %d", ErrTokenRejected, resp.StatusCode())
	}

	// emailとsubが無いと紐付けできない
	if u.Email == "" || u.Sub == "" {
		return OIDCUser{}, fmt.Errorf("%w: missing email or sub", ErrTokenRejected)
	}
	return u, nil
}
