package repository

import (
	"context"

	"ecom/internal/domain/model"
)

// 顧客アカウントの永続化の約束
type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	List(ctx context.Context, q PageQuery) ([]model.Customer, error)
	FindByUUID(ctx context.Context, uuid string) (model.Customer, error)
	FindByEmail(ctx context.Context, email string) (model.Customer, error)
	FindByOAuthEmail(ctx context.Context, email string) (model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	DeleteByUUID(ctx context.Context, uuid string) error
}
