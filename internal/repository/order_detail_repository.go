package repository

import (
	"context"

	"ecom/internal/domain/model"
)

type OrderDetailRepository interface {
	// order_id を埋めてまとめて保存
	CreateBulk(ctx context.Context, orderID string, details []model.OrderDetail) error
	// 複数注文分をまとめて取得（id昇順）
	ListByOrderIDs(ctx context.Context, orderIDs []string) ([]model.OrderDetail, error)
}
