package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "ecom/internal/repository"
)

// 呼び出し側に見せるメッセージ
const (
	msgConflict   = "Uniqueness constraint failed - Please try again"
	msgUnexpected = "An unexpected database error occurred."
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 書き込み失敗を 409 / 500 に振り分ける
func writeFailure(err error) error {
	if errors.Is(err, repo.ErrConflict) {
		return NewHTTPError(http.StatusConflict, msgConflict)
	}
	return NewHTTPError(http.StatusInternalServerError, msgUnexpected)
}
