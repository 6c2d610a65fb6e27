package repository

import (
	"context"

	"ecom/internal/domain/model"

	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	UpdateTotal(ctx context.Context, uuid string, total decimal.Decimal) error

	ListByCustomer(ctx context.Context, customerID string, q PageQuery) ([]model.Order, error)
	ListAll(ctx context.Context, q PageQuery) ([]model.Order, error)
	FindOwned(ctx context.Context, uuid string, customerID string) (model.Order, error)

	DeleteOwned(ctx context.Context, uuid string, customerID string) error
}
