package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Identity
	Timestamps

	UserID     string          `gorm:"column:user_id;type:varchar(8);not null;index"`
	OrderDate  time.Time       `gorm:"column:order_date;type:date;not null"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:numeric(14,2);not null"`

	// FK制約の定義のみ
	Details []OrderDetail `gorm:"foreignKey:OrderID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Order) TableName() string {
	return "orders"
}
