package usecase

import (
	"strings"

	"ecom/internal/domain/model"
	auth "ecom/internal/usecase/auth_usecase"
)

// 登録の入力（Business/Customer共通）
type AccountInput struct {
	Email     string
	Password  string
	Name      string
	AddrLine1 string
	AddrLine2 string
	City      string
	State     string
}

// 部分更新（nilか空文字は変更しない）
type AccountPatch struct {
	Email     *string
	Password  *string
	Name      *string
	AddrLine1 *string
	AddrLine2 *string
	City      *string
	State     *string
}

type AccountView struct {
	UUID      string `json:"uuid"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AddrLine1 string `json:"addr_line_1"`
	AddrLine2 string `json:"addr_line_2"`
	City      string `json:"city"`
	State     string `json:"state"`
}

func toAccountView(uuid string, a model.Account) AccountView {
	return AccountView{
		UUID:      uuid,
		Email:     a.Email,
		Name:      a.Name,
		AddrLine1: a.AddrLine1,
		AddrLine2: a.AddrLine2,
		City:      a.City,
		State:     a.State,
	}
}

func newAccount(in AccountInput, hashed string) model.Account {
	return model.Account{
		Email:     strings.TrimSpace(in.Email),
		Password:  hashed,
		Name:      strings.TrimSpace(in.Name),
		AddrLine1: strings.TrimSpace(in.AddrLine1),
		AddrLine2: strings.TrimSpace(in.AddrLine2),
		City:      strings.TrimSpace(in.City),
		State:     strings.TrimSpace(in.State),
	}
}

// 変更があった場合だけ true
func applyAccountPatch(acc *model.Account, p AccountPatch, hasher auth.PasswordHasher) (bool, error) {
	changed := false
	set := func(dst *string, v *string) {
		if v == nil {
			return
		}
		s := strings.TrimSpace(*v)
		if s == "" || s == *dst {
			return
		}
		*dst = s
		changed = true
	}

	set(&acc.Email, p.Email)
	set(&acc.Name, p.Name)
	set(&acc.AddrLine1, p.AddrLine1)
	set(&acc.AddrLine2, p.AddrLine2)
	set(&acc.City, p.City)
	set(&acc.State, p.State)

	// パスワードは比較できないので指定があれば常に再ハッシュ（前後の空白も含めてそのまま）
	if p.Password != nil && strings.TrimSpace(*p.Password) != "" {
		hashed, err := hasher.Hash(*p.Password)
		if err != nil {
			return false, err
		}
		acc.Password = hashed
		changed = true
	}

	return changed, nil
}
