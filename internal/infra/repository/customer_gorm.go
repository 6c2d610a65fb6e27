package repository

import (
	"context"

	"ecom/internal/domain/model"
	repo "ecom/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, c *model.Customer) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error)
}

func (r *CustomerGormRepository) List(ctx context.Context, q repo.PageQuery) ([]model.Customer, error) {
	var out []model.Customer
	err := r.db.WithContext(ctx).Scopes(pageScope(q)).Order("id asc").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CustomerGormRepository) FindByUUID(ctx context.Context, uuid string) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&c).Error
	if err != nil {
		return model.Customer{}, translateError(err)
	}
	return c, nil
}

// emailで1件取得
func (r *CustomerGormRepository) FindByEmail(ctx context.Context, email string) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("email_address = ?", email).First(&c).Error
	if err != nil {
		return model.Customer{}, translateError(err)
	}
	return c, nil
}

func (r *CustomerGormRepository) FindByOAuthEmail(ctx context.Context, email string) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("oauth_email = ?", email).First(&c).Error
	if err != nil {
		return model.Customer{}, translateError(err)
	}
	return c, nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, c *model.Customer) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error)
}

// 注文と明細はFKのCASCADEで消える
func (r *CustomerGormRepository) DeleteByUUID(ctx context.Context, uuid string) error {
	res := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&model.Customer{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
