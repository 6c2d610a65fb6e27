package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	Identity
	Timestamps

	Name        string          `gorm:"column:product_name;type:varchar(100);not null"`
	Description string          `gorm:"column:description;type:text"`
	Category    string          `gorm:"column:category;type:varchar(50);not null"`
	MfgDate     time.Time       `gorm:"column:manufacturing_date;type:date;not null"`
	ExpDate     time.Time       `gorm:"column:expiry_date;type:date;not null"`
	Price       decimal.Decimal `gorm:"column:product_price;type:numeric(12,2);not null"`
	BusinessID  string          `gorm:"column:business_id;type:varchar(8);not null;index"`
}

func (Product) TableName() string {
	return "products"
}
