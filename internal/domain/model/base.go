package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// 価格はJSONでは数値で返す
	decimal.MarshalJSONWithoutQuotes = true
}

// 内部ID（採番）と公開ID（8桁hex）
type Identity struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	UUID string `gorm:"column:uuid;type:varchar(8);not null;uniqueIndex" json:"uuid"`
}

// 作成日時/更新日時
type Timestamps struct {
	CreationDate time.Time `gorm:"column:creation_date;not null" json:"-"`
	UpdateDate   time.Time `gorm:"column:update_date;not null" json:"-"`
}

// 登録時に両方を同じ時刻で埋める
func NewTimestamps(now time.Time) Timestamps {
	return Timestamps{CreationDate: now, UpdateDate: now}
}

// Business と Customer の共通カラム
type Account struct {
	Email     string `gorm:"column:email_address;type:varchar(255);not null;uniqueIndex"`
	Password  string `gorm:"column:password;type:text"`
	Name      string `gorm:"column:name;type:varchar(255)"`
	AddrLine1 string `gorm:"column:address_line_1;type:text"`
	AddrLine2 string `gorm:"column:address_line_2;type:text"`
	City      string `gorm:"column:city;type:varchar(100)"`
	State     string `gorm:"column:state;type:varchar(100)"`

	IsVerified      bool   `gorm:"column:is_verified;not null;default:false"`
	OAuthProvider   string `gorm:"column:oauth_provider;type:varchar(50)"`
	OAuthID         string `gorm:"column:oauth_id;type:varchar(255)"`
	OAuthEmail      string `gorm:"column:oauth_email;type:varchar(255);index"`
	CreatedViaOAuth bool   `gorm:"column:created_via_oauth;not null;default:false"`
}
