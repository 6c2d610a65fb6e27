package repository

import (
	"context"

	"ecom/internal/domain/model"
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	List(ctx context.Context, q PageQuery) ([]model.Product, error)
	// name / description の部分一致
	SearchByText(ctx context.Context, text string, q PageQuery) ([]model.Product, error)
	ListByBusiness(ctx context.Context, businessID string, q PageQuery) ([]model.Product, error)

	FindByUUID(ctx context.Context, uuid string) (model.Product, error)
	FindOwned(ctx context.Context, uuid string, businessID string) (model.Product, error)

	Update(ctx context.Context, p *model.Product) error
	DeleteOwned(ctx context.Context, uuid string, businessID string) error
}
