package model

type Business struct {
	Identity
	Account
	Timestamps

	// FK制約の定義のみ（読み込みはしない）
	Products []Product `gorm:"foreignKey:BusinessID;references:UUID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Business) TableName() string {
	return "businesses"
}
