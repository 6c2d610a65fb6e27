package repository

import (
	"context"

	"ecom/internal/domain/model"
	repo "ecom/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// ヘッダのみ保存（明細はOrderDetailGormRepositoryで）
func (r *OrderGormRepository) Create(ctx context.Context, o *model.Order) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error)
}

func (r *OrderGormRepository) UpdateTotal(ctx context.Context, uuid string, total decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("uuid = ?", uuid).
		Update("total_price", total)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 自分の注文一覧（新しい順）
func (r *OrderGormRepository) ListByCustomer(ctx context.Context, customerID string, q repo.PageQuery) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", customerID).
		Order("id desc").
		Scopes(pageScope(q)).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// 全注文（管理向け）
func (r *OrderGormRepository) ListAll(ctx context.Context, q repo.PageQuery) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).Order("id desc").Scopes(pageScope(q)).Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindOwned(ctx context.Context, uuid string, customerID string) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).
		Where("uuid = ? AND user_id = ?", uuid, customerID).
		First(&o).Error
	if err != nil {
		return model.Order{}, translateError(err)
	}
	return o, nil
}

// 明細はFKのCASCADEで消える
func (r *OrderGormRepository) DeleteOwned(ctx context.Context, uuid string, customerID string) error {
	res := r.db.WithContext(ctx).
		Where("uuid = ? AND user_id = ?", uuid, customerID).
		Delete(&model.Order{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
