package model

import "github.com/shopspring/decimal"

// 注文明細（価格は注文時点のスナップショット）
type OrderDetail struct {
	Identity
	Timestamps

	OrderID string `gorm:"column:order_id;type:varchar(8);not null;index"`
	// 商品削除後も履歴として残すためFK制約は張らない
	ProductID string          `gorm:"column:product_id;type:varchar(8);not null;index"`
	Quantity  int64           `gorm:"column:quantity;not null"`
	Price     decimal.Decimal `gorm:"column:product_price;type:numeric(12,2);not null"`
}

func (OrderDetail) TableName() string {
	return "order_details"
}
