package model

type Customer struct {
	Identity
	Account
	Timestamps

	// FK制約の定義のみ
	Orders []Order `gorm:"foreignKey:UserID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
