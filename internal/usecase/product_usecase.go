package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"ecom/internal/domain/model"
	"ecom/internal/logging"
	repo "ecom/internal/repository"
	auth "ecom/internal/usecase/auth_usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const msgProductNotFound = "Product not present in database"

type ProductInput struct {
	Name        string
	Description string
	Category    string
	MfgDate     time.Time
	ExpDate     time.Time
	Price       decimal.Decimal
}

// 部分更新（nil・空文字・ゼロ日付は変更しない）
type ProductPatch struct {
	Name        *string
	Description *string
	Category    *string
	MfgDate     *time.Time
	ExpDate     *time.Time
	Price       *decimal.Decimal
}

// 公開向け
type ProductView struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	MfgDate     time.Time       `json:"mfg_date"`
	ExpDate     time.Time       `json:"exp_date"`
	Price       decimal.Decimal `json:"price"`
}

// 所有者向け（uuid / business_id 付き）
type ProductInternalView struct {
	ProductView
	UUID       string `json:"uuid"`
	BusinessID string `json:"business_id"`
}

type ProductUsecase struct {
	products  repo.ProductRepository
	validator InputValidator
	idGen     auth.IDGenerator
	clock     auth.Clock
	log       *logging.Logger
}

// DI
func NewProductUsecase(
	products repo.ProductRepository,
	validator InputValidator,
	idGen auth.IDGenerator,
	clock auth.Clock,
	log *logging.Logger,
) *ProductUsecase {
	return &ProductUsecase{
		products:  products,
		validator: validator,
		idGen:     idGen,
		clock:     clock,
		log:       log,
	}
}

func (u *ProductUsecase) Create(ctx context.Context, owner model.Business, in ProductInput) (ProductInternalView, error) {
	if err := u.validator.ValidateProduct(in); err != nil {
		return ProductInternalView{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p := model.Product{
		Identity:    model.Identity{UUID: u.idGen.NewID()},
		Timestamps:  model.NewTimestamps(u.clock.Now()),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		MfgDate:     in.MfgDate,
		ExpDate:     in.ExpDate,
		Price:       in.Price,
		BusinessID:  owner.UUID,
	}

	u.log.General("adding product", zap.String("name", p.Name), zap.String("business", owner.UUID))
	if err := u.products.Create(ctx, &p); err != nil {
		u.log.Failure("product creation failed", zap.String("name", p.Name), zap.Error(err))
		return ProductInternalView{}, writeFailure(err)
	}

	u.log.Success("product created", zap.String("uuid", p.UUID), zap.String("business", owner.UUID))
	return toProductInternalView(p), nil
}

func (u *ProductUsecase) List(ctx context.Context, in PageInput) ([]ProductView, error) {
	q, err := in.query()
	if err != nil {
		return nil, err
	}

	items, err := u.products.List(ctx, q)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}
	if len(items) == 0 {
		u.log.Warning("no products found")
		return nil, NewHTTPError(http.StatusNotFound, "No product present in database")
	}
	return toProductViews(items), nil
}

// 商品名・説明文の部分一致検索
func (u *ProductUsecase) SearchByText(ctx context.Context, text string, in PageInput) ([]ProductView, error) {
	q, err := in.query()
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "search text is required")
	}

	items, err := u.products.SearchByText(ctx, text, q)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}
	if len(items) == 0 {
		u.log.Warning("no products matching text", zap.String("text", text))
		return nil, NewHTTPError(http.StatusNotFound, "No such product present in database")
	}
	return toProductViews(items), nil
}

// 自分の商品一覧
func (u *ProductUsecase) ListOwned(ctx context.Context, owner model.Business, in PageInput) ([]ProductInternalView, error) {
	q, err := in.query()
	if err != nil {
		return nil, err
	}

	items, err := u.products.ListByBusiness(ctx, owner.UUID, q)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}
	if len(items) == 0 {
		u.log.Warning("no products found for business", zap.String("business", owner.UUID))
		return nil, NewHTTPError(http.StatusNotFound, "No product present in database")
	}

	out := make([]ProductInternalView, 0, len(items))
	for _, p := range items {
		out = append(out, toProductInternalView(p))
	}
	return out, nil
}

// 他社の商品は「存在しない扱い」
func (u *ProductUsecase) GetOwned(ctx context.Context, owner model.Business, uuid string) (ProductInternalView, error) {
	p, err := u.findOwned(ctx, owner, uuid)
	if err != nil {
		return ProductInternalView{}, err
	}
	return toProductInternalView(p), nil
}

func (u *ProductUsecase) Update(ctx context.Context, owner model.Business, uuid string, patch ProductPatch) (ProductInternalView, error) {
	if err := u.validator.ValidateProductPatch(patch); err != nil {
		return ProductInternalView{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := u.findOwned(ctx, owner, uuid)
	if err != nil {
		return ProductInternalView{}, err
	}

	if !applyProductPatch(&p, patch) {
		return toProductInternalView(p), nil
	}

	p.UpdateDate = u.clock.Now()
	if err := u.products.Update(ctx, &p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ProductInternalView{}, NewHTTPError(http.StatusNotFound, msgProductNotFound)
		}
		u.log.Failure("product update failed", zap.String("uuid", uuid), zap.Error(err))
		return ProductInternalView{}, writeFailure(err)
	}

	u.log.Success("product updated", zap.String("uuid", uuid), zap.String("business", owner.UUID))
	return toProductInternalView(p), nil
}

// 過去の注文明細は残る
func (u *ProductUsecase) Delete(ctx context.Context, owner model.Business, uuid string) (ProductInternalView, error) {
	p, err := u.findOwned(ctx, owner, uuid)
	if err != nil {
		return ProductInternalView{}, err
	}

	if err := u.products.DeleteOwned(ctx, uuid, owner.UUID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ProductInternalView{}, NewHTTPError(http.StatusNotFound, msgProductNotFound)
		}
		u.log.Failure("product deletion failed", zap.String("uuid", uuid), zap.Error(err))
		return ProductInternalView{}, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}

	u.log.Success("product deleted", zap.String("uuid", uuid), zap.String("business", owner.UUID))
	return toProductInternalView(p), nil
}

func (u *ProductUsecase) findOwned(ctx context.Context, owner model.Business, uuid string) (model.Product, error) {
	p, err := u.products.FindOwned(ctx, uuid, owner.UUID)
	if errors.Is(err, repo.ErrNotFound) {
		u.log.Warning("product not found for business", zap.String("uuid", uuid), zap.String("business", owner.UUID))
		return model.Product{}, NewHTTPError(http.StatusNotFound, msgProductNotFound)
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}
	return p, nil
}

func applyProductPatch(p *model.Product, patch ProductPatch) bool {
	changed := false
	setString := func(dst *string, v *string) {
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
	setDate := func(dst *time.Time, v *time.Time) {
		if v == nil || v.IsZero() || v.Equal(*dst) {
			return
		}
		*dst = *v
		changed = true
	}

	setString(&p.Name, patch.Name)
	setString(&p.Description, patch.Description)
	setString(&p.Category, patch.Category)
	setDate(&p.MfgDate, patch.MfgDate)
	setDate(&p.ExpDate, patch.ExpDate)

	if patch.Price != nil && !patch.Price.Equal(p.Price) {
		p.Price = *patch.Price
		changed = true
	}
	return changed
}

func toProductView(p model.Product) ProductView {
	return ProductView{
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		MfgDate:     p.MfgDate,
		ExpDate:     p.ExpDate,
		Price:       p.Price,
	}
}

func toProductViews(items []model.Product) []ProductView {
	out := make([]ProductView, 0, len(items))
	for _, p := range items {
		out = append(out, toProductView(p))
	}
	return out
}

func toProductInternalView(p model.Product) ProductInternalView {
	return ProductInternalView{
		ProductView: toProductView(p),
		UUID:        p.UUID,
		BusinessID:  p.BusinessID,
	}
}
