package usecase

import (
	"net/http"

	repo "ecom/internal/repository"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// 一覧のskip/limit
type PageInput struct {
	Skip  int
	Limit int
}

func (in PageInput) query() (repo.PageQuery, error) {
	if in.Skip < 0 {
		return repo.PageQuery{}, NewHTTPError(http.StatusBadRequest, "skip must be >= 0")
	}
	if in.Limit < 1 || in.Limit > MaxLimit {
		return repo.PageQuery{}, NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 100")
	}
	return repo.PageQuery{Skip: in.Skip, Limit: in.Limit}, nil
}
