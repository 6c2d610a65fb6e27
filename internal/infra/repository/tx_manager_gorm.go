package repository

import (
	"context"

	repo "ecom/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders       repo.OrderRepository
	orderDetails repo.OrderDetailRepository
	products     repo.ProductRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository             { return r.orders }
func (r *txReposGorm) OrderDetails() repo.OrderDetailRepository { return r.orderDetails }
func (r *txReposGorm) Products() repo.ProductRepository         { return r.products }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがerrorを返したらrollback、nilならcommit
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:       NewOrderGormRepository(tx),
			orderDetails: NewOrderDetailGormRepository(tx),
			products:     NewProductGormRepository(tx),
		}
		return fn(r)
	})
}
