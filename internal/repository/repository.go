package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// 一意制約違反（email重複、公開IDの衝突）
	ErrConflict = errors.New("conflict")
)

// skip/limit のページング
type PageQuery struct {
	Skip  int
	Limit int
}
