package repository

import (
	"context"

	"ecom/internal/domain/model"
)

// 事業者アカウントの永続化の約束
type BusinessRepository interface {
	Create(ctx context.Context, b *model.Business) error
	List(ctx context.Context, q PageQuery) ([]model.Business, error)
	FindByUUID(ctx context.Context, uuid string) (model.Business, error)
	FindByEmail(ctx context.Context, email string) (model.Business, error)
	FindByOAuthEmail(ctx context.Context, email string) (model.Business, error)
	Update(ctx context.Context, b *model.Business) error
	DeleteByUUID(ctx context.Context, uuid string) error
}
