package validator

import (
	"errors"
	"fmt"
	"strings"

	"ecom/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")
)

// numeric(12,2) に収まる範囲
var maxPrice = decimal.New(1, 10)

const maxQuantity = 10000

type inputValidator struct {
	v *validator.Validate
}

// Usecaseは interface を依存注入
func NewInputValidator() usecase.InputValidator {
	return &inputValidator{v: validator.New()}
}

// 登録の入力を検証
func (iv *inputValidator) ValidateAccount(in usecase.AccountInput) error {
	if err := iv.field("email", strings.TrimSpace(in.Email), "required,email,max=100"); err != nil {
		return err
	}
	if err := iv.field("password", strings.TrimSpace(in.Password), "required"); err != nil {
		return err
	}
	if err := iv.field("password", in.Password, "max=72"); err != nil {
		return err
	}
	if err := iv.field("name", strings.TrimSpace(in.Name), "required,max=100"); err != nil {
		return err
	}
	return iv.address(in.AddrLine1, in.AddrLine2, in.City, in.State)
}

// 部分更新：指定があるものだけ
func (iv *inputValidator) ValidateAccountPatch(p usecase.AccountPatch) error {
	if s, ok := supplied(p.Email); ok {
		if err := iv.field("email", s, "email,max=100"); err != nil {
			return err
		}
	}
	if _, ok := supplied(p.Password); ok {
		if err := iv.field("password", *p.Password, "max=72"); err != nil {
			return err
		}
	}
	if s, ok := supplied(p.Name); ok {
		if err := iv.field("name", s, "max=100"); err != nil {
			return err
		}
	}
	return iv.address(deref(p.AddrLine1), deref(p.AddrLine2), deref(p.City), deref(p.State))
}

func (iv *inputValidator) ValidateProduct(in usecase.ProductInput) error {
	if err := iv.field("name", strings.TrimSpace(in.Name), "required,max=100"); err != nil {
		return err
	}
	if err := iv.field("category", strings.TrimSpace(in.Category), "required,max=50"); err != nil {
		return err
	}
	if in.MfgDate.IsZero() {
		return fmt.Errorf("%w: mfg_date is required", ErrInvalidInput)
	}
	if in.ExpDate.IsZero() {
		return fmt.Errorf("%w: exp_date is required", ErrInvalidInput)
	}
	return checkPrice(in.Price)
}

func (iv *inputValidator) ValidateProductPatch(p usecase.ProductPatch) error {
	if s, ok := supplied(p.Name); ok {
		if err := iv.field("name", s, "max=100"); err != nil {
			return err
		}
	}
	if s, ok := supplied(p.Category); ok {
		if err := iv.field("category", s, "max=50"); err != nil {
			return err
		}
	}
	if p.Price != nil {
		return checkPrice(*p.Price)
	}
	return nil
}

// 注文の入力を検証（商品の存在確認はusecase側）
func (iv *inputValidator) ValidateOrder(in usecase.PlaceOrderInput) error {
	if in.OrderDate.IsZero() {
		return fmt.Errorf("%w: order_date is required", ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: order_items must not be empty", ErrInvalidInput)
	}
	for i, item := range in.Items {
		if err := iv.field(fmt.Sprintf("order_items[%d].product_id", i), strings.TrimSpace(item.ProductID), "required"); err != nil {
			return err
		}
		if err := iv.field(fmt.Sprintf("order_items[%d].quantity", i), item.Quantity, fmt.Sprintf("gt=0,lte=%d", maxQuantity)); err != nil {
			return err
		}
	}
	return nil
}

func (iv *inputValidator) address(line1, line2, city, state string) error {
	fields := []struct {
		name  string
		value string
	}{
		{"addr_line_1", line1},
		{"addr_line_2", line2},
		{"city", city},
		{"state", state},
	}
	for _, f := range fields {
		if err := iv.field(f.name, strings.TrimSpace(f.value), "max=100"); err != nil {
			return err
		}
	}
	return nil
}

// タグ1つ分の検証を "field: rule" 形式のエラーにする
func (iv *inputValidator) field(name string, value any, tag string) error {
	err := iv.v.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: %s failed on '%s'", ErrInvalidInput, name, verrs[0].Tag())
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, name)
}

func checkPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	}
	if !price.Equal(price.Truncate(2)) {
		return fmt.Errorf("%w: price must have at most 2 decimal places", ErrInvalidInput)
	}
	if price.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("%w: price must be < %s", ErrInvalidInput, maxPrice.String())
	}
	return nil
}

func supplied(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	s := strings.TrimSpace(*p)
	return s, s != ""
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
