package repository

import (
	"context"
	"strings"

	"ecom/internal/domain/model"
	repo "ecom/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p *model.Product) error {
	return translateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProductGormRepository) List(ctx context.Context, q repo.PageQuery) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Scopes(pageScope(q)).Order("id asc").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// 商品名か説明文にtextを含むもの（大文字小文字を区別しない）
func (r *ProductGormRepository) SearchByText(ctx context.Context, text string, q repo.PageQuery) ([]model.Product, error) {
	var products []model.Product
	like := "%" + strings.TrimSpace(text) + "%"

	err := r.db.WithContext(ctx).
		Where("product_name ILIKE ? OR description ILIKE ?", like, like).
		Scopes(pageScope(q)).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductGormRepository) ListByBusiness(ctx context.Context, businessID string, q repo.PageQuery) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Scopes(pageScope(q)).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// 公開IDで商品を取得
func (r *ProductGormRepository) FindByUUID(ctx context.Context, uuid string) (model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&p).Error; err != nil {
		return model.Product{}, translateError(err)
	}
	return p, nil
}

// 自分の商品だけ
func (r *ProductGormRepository) FindOwned(ctx context.Context, uuid string, businessID string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("uuid = ? AND business_id = ?", uuid, businessID).
		First(&p).Error
	if err != nil {
		return model.Product{}, translateError(err)
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p *model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"product_name":       p.Name,
		"description":        p.Description,
		"category":           p.Category,
		"manufacturing_date": p.MfgDate,
		"expiry_date":        p.ExpDate,
		"product_price":      p.Price,
		"update_date":        p.UpdateDate,
	})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除（過去の注文明細はそのまま残る）
func (r *ProductGormRepository) DeleteOwned(ctx context.Context, uuid string, businessID string) error {
	res := r.db.WithContext(ctx).
		Where("uuid = ? AND business_id = ?", uuid, businessID).
		Delete(&model.Product{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
