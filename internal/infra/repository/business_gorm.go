package repository

import (
	"context"

	"ecom/internal/domain/model"
	repo "ecom/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BusinessGormRepository struct {
	db *gorm.DB
}

// DI
func NewBusinessGormRepository(db *gorm.DB) *BusinessGormRepository {
	return &BusinessGormRepository{db: db}
}

func (r *BusinessGormRepository) Create(ctx context.Context, b *model.Business) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error)
}

func (r *BusinessGormRepository) List(ctx context.Context, q repo.PageQuery) ([]model.Business, error) {
	var out []model.Business
	err := r.db.WithContext(ctx).Scopes(pageScope(q)).Order("id asc").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BusinessGormRepository) FindByUUID(ctx context.Context, uuid string) (model.Business, error) {
	return r.findOne(ctx, "uuid = ?", uuid)
}

func (r *BusinessGormRepository) FindByEmail(ctx context.Context, email string) (model.Business, error) {
	return r.findOne(ctx, "email_address = ?", email)
}

// OAuth経由で作られたアカウントの検索
func (r *BusinessGormRepository) FindByOAuthEmail(ctx context.Context, email string) (model.Business, error) {
	return r.findOne(ctx, "oauth_email = ?", email)
}

func (r *BusinessGormRepository) findOne(ctx context.Context, cond string, arg string) (model.Business, error) {
	var b model.Business
	if err := r.db.WithContext(ctx).Where(cond, arg).First(&b).Error; err != nil {
		return model.Business{}, translateError(err)
	}
	return b, nil
}

// 全カラムを保存
func (r *BusinessGormRepository) Update(ctx context.Context, b *model.Business) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error)
}

// 商品はFKのCASCADEで消える
func (r *BusinessGormRepository) DeleteByUUID(ctx context.Context, uuid string) error {
	res := r.db.WithContext(ctx).Where("uuid = ?", uuid).Delete(&model.Business{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
