//go:build e2e

package e2e

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
}

type Account struct {
	UUID  string `json:"uuid"`
	Email string `json:"email"`
}

type businessResult struct {
	Business Account `json:"business"`
}

type customerResult struct {
	Customer Account `json:"customer"`
}

type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	MfgDate     string          `json:"mfg_date"`
	ExpDate     string          `json:"exp_date"`
	Price       decimal.Decimal `json:"price"`
}

type Product struct {
	UUID       string          `json:"uuid"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	BusinessID string          `json:"business_id"`
}

type productResult struct {
	Product Product `json:"product"`
}

type productsResult struct {
	Products []Product `json:"products"`
}

type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type OrderRequest struct {
	OrderDate string             `json:"order_date"`
	Items     []OrderItemRequest `json:"order_items"`
}

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type Order struct {
	UUID       string          `json:"uuid"`
	UserID     string          `json:"user_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []OrderItem     `json:"order_items"`
}

type orderResult struct {
	Order Order `json:"order"`
}

type ordersResult struct {
	Orders []Order `json:"orders"`
}

var publicID = regexp.MustCompile(`^[0-9a-f]{8}$`)

func registerBusiness(ctx context.Context, t *testing.T, c *TestClient) (Account, Creds) {
	t.Helper()
	creds := Creds{Email: uniqueEmail("biz"), Password: "s3cret pw"}
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/business/create", Creds{}, AccountRequest{Email: creds.Email, Password: creds.Password, Name: "E2E Shop"})
	requireStatus(t, resp, http.StatusCreated, body)
	return mustDecode[businessResult](t, body).Business, creds
}

func registerCustomer(ctx context.Context, t *testing.T, c *TestClient) (Account, Creds) {
	t.Helper()
	creds := Creds{Email: uniqueEmail("cus"), Password: "hunter2"}
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/customer/create", Creds{}, AccountRequest{Email: creds.Email, Password: creds.Password, Name: "E2E Buyer"})
	requireStatus(t, resp, http.StatusCreated, body)
	return mustDecode[customerResult](t, body).Customer, creds
}

func createProduct(ctx context.Context, t *testing.T, c *TestClient, owner Creds, name string, price string) Product {
	t.Helper()
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/product/create", owner, ProductRequest{
		Name:        name,
		Description: "created by e2e",
		Category:    "tea",
		MfgDate:     "2024-01-01",
		ExpDate:     "2026-01-01",
		Price:       decimal.RequireFromString(price),
	})
	requireStatus(t, resp, http.StatusCreated, body)
	return mustDecode[productResult](t, body).Product
}

func TestBusiness_DuplicateEmail_Is409(t *testing.T) {
	ctx := context.Background()
	c := NewTestClient(t)

	biz, creds := registerBusiness(ctx, t, c)
	assert.Regexp(t, publicID, biz.UUID)

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/business/create", Creds{}, AccountRequest{Email: creds.Email, Password: "other", Name: "Dup"})
	requireStatus(t, resp, http.StatusConflict, body)
	assert.Equal(t, "Uniqueness constraint failed - Please try again", mustDecode[ErrorResponse](t, body).Error)

	// 同じメールでも顧客側は別テーブル
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/customer/create", Creds{}, AccountRequest{Email: creds.Email, Password: "other", Name: "Same mail"})
	requireStatus(t, resp, http.StatusCreated, body)
}

func TestBusiness_PasswordWithSpaces_CanLogIn(t *testing.T) {
	ctx := context.Background()
	c := NewTestClient(t)

	creds := Creds{Email: uniqueEmail("space"), Password: " padded "}
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/business/create", Creds{}, AccountRequest{Email: creds.Email, Password: creds.Password, Name: "Spaces"})
	requireStatus(t, resp, http.StatusCreated, body)

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/business/me", creds, nil)
	requireStatus(t, resp, http.StatusOK, body)
}

func TestProduct_OwnerScopingAndSearch(t *testing.T) {
	ctx := context.Background()
	c := NewTestClient(t)

	owner, ownerCreds := registerBusiness(ctx, t, c)
	_, otherCreds := registerBusiness(ctx, t, c)

	marker := strings.TrimSuffix(uniqueEmail("m"), "@e2e.example.com")
	p := createProduct(ctx, t, c, ownerCreds, "Green Tea "+marker, "19.99")
	assert.Regexp(t, publicID, p.UUID)
	assert.Equal(t, owner.UUID, p.BusinessID)

	// 他の事業者からは見えない
	resp, body := c.doJSON(ctx, t, http.MethodGet, "/product/search/uuid/"+p.UUID, otherCreds, nil)
	requireStatus(t, resp, http.StatusNotFound, body)
	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/product/delete/uuid/"+p.UUID, otherCreds, nil)
	requireStatus(t, resp, http.StatusNotFound, body)

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/product/search/uuid/"+p.UUID, ownerCreds, nil)
	requireStatus(t, resp, http.StatusOK, body)

	// 大文字小文字を区別しない検索
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/product/search/name/"+url.PathEscape(strings.ToUpper("green tea "+marker)), Creds{}, nil)
	requireStatus(t, resp, http.StatusOK, body)
	require.Len(t, mustDecode[productsResult](t, body).Products, 1)
}

func TestProduct_PriceOutOfColumnRange_Is400(t *testing.T) {
	ctx := context.Background()
	c := NewTestClient(t)
	_, creds := registerBusiness(ctx, t, c)

	for _, price := range []string{"10.005", "10000000000"} {
		resp, body := c.doJSON(ctx, t, http.MethodPost, "/product/create", creds, ProductRequest{
			Name:     "Bad price",
			Category: "tea",
			MfgDate:  "2024-01-01",
			ExpDate:  "2026-01-01",
			Price:    decimal.RequireFromString(price),
		})
		requireStatus(t, resp, http.StatusBadRequest, body)
	}
}

func TestOrder_FlowAgainstDatabase(t *testing.T) {
	ctx := context.Background()
	c := NewTestClient(t)
	db := openDB(t)

	_, bizCreds := registerBusiness(ctx, t, c)
	p := createProduct(ctx, t, c, bizCreds, "Sencha", "19.99")
	customer, cusCreds := registerCustomer(ctx, t, c)

	// 存在しない商品が混ざると注文ごと残らない
	resp, body := c.doJSON(ctx, t, http.MethodPost, "/order/create", cusCreds, OrderRequest{
		OrderDate: "2024-05-01",
		Items: []OrderItemRequest{
			{ProductID: p.UUID, Quantity: 1},
			{ProductID: "deadbeef", Quantity: 1},
		},
	})
	requireStatus(t, resp, http.StatusNotFound, body)
	assert.Equal(t, "Product with ID: deadbeef does not exist.", mustDecode[ErrorResponse](t, body).Error)
	assert.Equal(t, 0, countRows(ctx, t, db, "SELECT count(*) FROM orders WHERE user_id = $1", customer.UUID))

	// 3個で合計は価格の3倍
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/order/create", cusCreds, OrderRequest{
		OrderDate: "2024-05-01",
		Items:     []OrderItemRequest{{ProductID: p.UUID, Quantity: 3}},
	})
	requireStatus(t, resp, http.StatusCreated, body)
	order := mustDecode[orderResult](t, body).Order
	assert.Regexp(t, publicID, order.UUID)
	assert.Equal(t, customer.UUID, order.UserID)
	assert.Equal(t, "59.97", order.TotalPrice.StringFixed(2))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "19.99", order.Items[0].Price.StringFixed(2))

	// 同じ内容でも別の注文になる（/add も同じ）
	resp, body = c.doJSON(ctx, t, http.MethodPost, "/order/add", cusCreds, OrderRequest{
		OrderDate: "2024-05-01",
		Items:     []OrderItemRequest{{ProductID: p.UUID, Quantity: 3}},
	})
	requireStatus(t, resp, http.StatusCreated, body)
	assert.NotEqual(t, order.UUID, mustDecode[orderResult](t, body).Order.UUID)

	resp, body = c.doJSON(ctx, t, http.MethodGet, "/order/search", cusCreds, nil)
	requireStatus(t, resp, http.StatusOK, body)
	assert.Len(t, mustDecode[ordersResult](t, body).Orders, 2)

	// 商品を消しても明細の価格は残る
	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/product/delete/uuid/"+p.UUID, bizCreds, nil)
	requireStatus(t, resp, http.StatusAccepted, body)
	resp, body = c.doJSON(ctx, t, http.MethodGet, "/order/search/uuid/"+order.UUID, cusCreds, nil)
	requireStatus(t, resp, http.StatusOK, body)
	assert.Equal(t, "59.97", mustDecode[orderResult](t, body).Order.TotalPrice.StringFixed(2))

	// 顧客を消すと注文と明細もCASCADEで消える
	resp, body = c.doJSON(ctx, t, http.MethodDelete, "/customer/delete/me", cusCreds, nil)
	requireStatus(t, resp, http.StatusAccepted, body)
	assert.Equal(t, 0, countRows(ctx, t, db, "SELECT count(*) FROM orders WHERE user_id = $1", customer.UUID))
	assert.Equal(t, 0, countRows(ctx, t, db, "SELECT count(*) FROM order_details WHERE order_id = $1", order.UUID))
}
