package repository

import (
	"context"

	"ecom/internal/domain/model"

	"gorm.io/gorm"
)

type OrderDetailGormRepository struct {
	db *gorm.DB
}

func NewOrderDetailGormRepository(db *gorm.DB) *OrderDetailGormRepository {
	return &OrderDetailGormRepository{db: db}
}

// 注文明細を一括作成
func (r *OrderDetailGormRepository) CreateBulk(ctx context.Context, orderID string, details []model.OrderDetail) error {
	if len(details) == 0 {
		return nil
	}
	for i := range details {
		details[i].OrderID = orderID
	}
	return translateError(r.db.WithContext(ctx).Create(&details).Error)
}

func (r *OrderDetailGormRepository) ListByOrderIDs(ctx context.Context, orderIDs []string) ([]model.OrderDetail, error) {
	var details []model.OrderDetail
	if len(orderIDs) == 0 {
		return details, nil
	}
	err := r.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("id asc").
		Find(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}
