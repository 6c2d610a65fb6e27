package handler

import "ecom/internal/usecase"

// business / customer 共通の登録body
type AccountCreateRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	AddrLine1 string `json:"addr_line_1"`
	AddrLine2 string `json:"addr_line_2"`
	City      string `json:"city"`
	State     string `json:"state"`
}

func (r AccountCreateRequest) input() usecase.AccountInput {
	return usecase.AccountInput{
		Email:     r.Email,
		Password:  r.Password,
		Name:      r.Name,
		AddrLine1: r.AddrLine1,
		AddrLine2: r.AddrLine2,
		City:      r.City,
		State:     r.State,
	}
}

// 省略・空文字の項目は変更しない
type AccountUpdateRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Name      *string `json:"name"`
	AddrLine1 *string `json:"addr_line_1"`
	AddrLine2 *string `json:"addr_line_2"`
	City      *string `json:"city"`
	State     *string `json:"state"`
}

func (r AccountUpdateRequest) patch() usecase.AccountPatch {
	return usecase.AccountPatch{
		Email:     r.Email,
		Password:  r.Password,
		Name:      r.Name,
		AddrLine1: r.AddrLine1,
		AddrLine2: r.AddrLine2,
		City:      r.City,
		State:     r.State,
	}
}

type meResponse struct {
	Action string `json:"action"`
	Email  string `json:"email"`
}
