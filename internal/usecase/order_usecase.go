package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ecom/internal/domain/model"
	"ecom/internal/logging"
	repo "ecom/internal/repository"
	auth "ecom/internal/usecase/auth_usecase"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	instrumentationName = "ecom/internal/usecase"
	msgOrderNotFound    = "Order not present in database"
)

// total_price numeric(14,2) の上限
var maxOrderTotal = decimal.New(1, 12)

type OrderItemInput struct {
	ProductID string
	Quantity  int64
}

type PlaceOrderInput struct {
	OrderDate time.Time
	Items     []OrderItemInput
}

type OrderItemView struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderView struct {
	UUID       string          `json:"uuid"`
	OrderDate  time.Time       `json:"order_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []OrderItemView `json:"order_items"`
}

type OrderItemInternalView struct {
	UUID string `json:"uuid"`
	OrderItemView
}

// 管理向け（user_id と明細uuid付き）
type OrderInternalView struct {
	UUID       string                  `json:"uuid"`
	UserID     string                  `json:"user_id"`
	OrderDate  time.Time               `json:"order_date"`
	TotalPrice decimal.Decimal         `json:"total_price"`
	Items      []OrderItemInternalView `json:"order_items"`
}

type OrderUsecase struct {
	tx        repo.TransactionManager
	orders    repo.OrderRepository
	details   repo.OrderDetailRepository
	validator InputValidator
	idGen     auth.IDGenerator
	clock     auth.Clock
	log       *logging.Logger

	tracer trace.Tracer
	placed metric.Int64Counter
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	details repo.OrderDetailRepository,
	validator InputValidator,
	idGen auth.IDGenerator,
	clock auth.Clock,
	log *logging.Logger,
) *OrderUsecase {
	// Providerが未設定ならnoopになる
	placed, err := otel.Meter(instrumentationName).Int64Counter(
		"orders_placed_total",
		metric.WithDescription("Number of orders committed"),
	)
	if err != nil {
		log.Warning("orders_placed_total counter unavailable", zap.Error(err))
	}

	return &OrderUsecase{
		tx:        tx,
		orders:    orders,
		details:   details,
		validator: validator,
		idGen:     idGen,
		clock:     clock,
		log:       log,
		tracer:    otel.Tracer(instrumentationName),
		placed:    placed,
	}
}

// 注文作成：ヘッダ作成→商品ごとに価格を確定→明細保存→合計更新を1Txで行う
func (u *OrderUsecase) PlaceOrder(ctx context.Context, customer model.Customer, in PlaceOrderInput) (OrderInternalView, error) {
	ctx, span := u.tracer.Start(ctx, "OrderUsecase.PlaceOrder",
		trace.WithAttributes(
			attribute.String("customer.uuid", customer.UUID),
			attribute.Int("order.items", len(in.Items)),
		),
	)
	defer span.End()

	if err := u.validator.ValidateOrder(in); err != nil {
		span.SetStatus(codes.Error, "invalid input")
		return OrderInternalView{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	now := u.clock.Now()
	order := model.Order{
		Identity:   model.Identity{UUID: u.idGen.NewID()},
		Timestamps: model.NewTimestamps(now),
		UserID:     customer.UUID,
		OrderDate:  in.OrderDate,
		TotalPrice: decimal.Zero,
	}
	var details []model.OrderDetail

	u.log.General("placing order", zap.String("customer", customer.UUID), zap.Int("items", len(in.Items)))
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Orders().Create(ctx, &order); err != nil {
			return fmt.Errorf("create order header: %w", err)
		}

		total := decimal.Zero
		details = make([]model.OrderDetail, 0, len(in.Items))
		for _, item := range in.Items {
			productID := strings.TrimSpace(item.ProductID)
			p, err := r.Products().FindByUUID(ctx, productID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product with ID: %s does not exist.", productID))
			}
			if err != nil {
				return fmt.Errorf("find product %s: %w", productID, err)
			}

			total = total.Add(p.Price.Mul(decimal.NewFromInt(item.Quantity)))
			details = append(details, model.OrderDetail{
				Identity:   model.Identity{UUID: u.idGen.NewID()},
				Timestamps: model.NewTimestamps(now),
				OrderID:    order.UUID,
				ProductID:  p.UUID,
				Quantity:   item.Quantity,
				Price:      p.Price,
			})
		}

		if total.GreaterThanOrEqual(maxOrderTotal) {
			return NewHTTPError(http.StatusBadRequest, "order total exceeds the allowed maximum")
		}

		if err := r.OrderDetails().CreateBulk(ctx, order.UUID, details); err != nil {
			return fmt.Errorf("create order details: %w", err)
		}
		if err := r.Orders().UpdateTotal(ctx, order.UUID, total); err != nil {
			return fmt.Errorf("update order total: %w", err)
		}
		order.TotalPrice = total
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "order placement failed")
		if he, ok := AsHTTPError(err); ok {
			u.log.Warning("order rejected", zap.String("customer", customer.UUID), zap.String("reason", he.Message))
			return OrderInternalView{}, he
		}
		u.log.Failure("order placement failed", zap.String("customer", customer.UUID), zap.Error(err))
		return OrderInternalView{}, writeFailure(err)
	}

	if u.placed != nil {
		u.placed.Add(ctx, 1)
	}
	span.SetAttributes(attribute.String("order.uuid", order.UUID), attribute.String("order.total", order.TotalPrice.String()))
	u.log.Success("order placed", zap.String("uuid", order.UUID), zap.String("total", order.TotalPrice.String()))
	return toOrderInternalView(order, details), nil
}

// 自分の注文一覧
func (u *OrderUsecase) ListMine(ctx context.Context, customer model.Customer, in PageInput) ([]OrderView, error) {
	q, err := in.query()
	if err != nil {
		return nil, err
	}

	orders, err := u.orders.ListByCustomer(ctx, customer.UUID, q)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}
	if len(orders) == 0 {
		u.log.Warning("no orders found for customer", zap.String("customer", customer.UUID))
		return nil, NewHTTPError(http.StatusNotFound, "No order present in database")
	}

	byOrder, err := u.detailsByOrder(ctx, orders)
	if err != nil {
		return nil, err
	}

	out := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderView(o, byOrder[o.UUID]))
	}
	return out, nil
}

// 全注文（管理向け）
func (u *OrderUsecase) ListAll(ctx context.Context, in PageInput) ([]OrderInternalView, error) {
	q, err := in.query()
	if err != nil {
		return nil, err
	}

	orders, err := u.orders.ListAll(ctx, q)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}
	if len(orders) == 0 {
		u.log.Warning("no orders found")
		return nil, NewHTTPError(http.StatusNotFound, "No order present in database")
	}

	byOrder, err := u.detailsByOrder(ctx, orders)
	if err != nil {
		return nil, err
	}

	out := make([]OrderInternalView, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderInternalView(o, byOrder[o.UUID]))
	}
	return out, nil
}

func (u *OrderUsecase) GetMine(ctx context.Context, customer model.Customer, uuid string) (OrderView, error) {
	o, details, err := u.findOwned(ctx, customer, uuid)
	if err != nil {
		return OrderView{}, err
	}
	return toOrderView(o, details), nil
}

// 明細はFKのCASCADEで消える
func (u *OrderUsecase) DeleteMine(ctx context.Context, customer model.Customer, uuid string) (OrderView, error) {
	o, details, err := u.findOwned(ctx, customer, uuid)
	if err != nil {
		return OrderView{}, err
	}

	if err := u.orders.DeleteOwned(ctx, uuid, customer.UUID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return OrderView{}, NewHTTPError(http.StatusNotFound, msgOrderNotFound)
		}
		u.log.Failure("order deletion failed", zap.String("uuid", uuid), zap.Error(err))
		return OrderView{}, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}

	u.log.Success("order deleted", zap.String("uuid", uuid), zap.String("customer", customer.UUID))
	return toOrderView(o, details), nil
}

func (u *OrderUsecase) findOwned(ctx context.Context, customer model.Customer, uuid string) (model.Order, []model.OrderDetail, error) {
	o, err := u.orders.FindOwned(ctx, uuid, customer.UUID)
	if errors.Is(err, repo.ErrNotFound) {
		u.log.Warning("order not found for customer", zap.String("uuid", uuid), zap.String("customer", customer.UUID))
		return model.Order{}, nil, NewHTTPError(http.StatusNotFound, msgOrderNotFound)
	}
	if err != nil {
		return model.Order{}, nil, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}

	byOrder, err := u.detailsByOrder(ctx, []model.Order{o})
	if err != nil {
		return model.Order{}, nil, err
	}
	return o, byOrder[o.UUID], nil
}

func (u *OrderUsecase) detailsByOrder(ctx context.Context, orders []model.Order) (map[string][]model.OrderDetail, error) {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.UUID)
	}

	details, err := u.details.ListByOrderIDs(ctx, ids)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, msgUnexpected)
	}

	byOrder := make(map[string][]model.OrderDetail, len(orders))
	for _, d := range details {
		byOrder[d.OrderID] = append(byOrder[d.OrderID], d)
	}
	return byOrder, nil
}

func toOrderView(o model.Order, details []model.OrderDetail) OrderView {
	items := make([]OrderItemView, 0, len(details))
	for _, d := range details {
		items = append(items, toOrderItemView(d))
	}
	return OrderView{
		UUID:       o.UUID,
		OrderDate:  o.OrderDate,
		TotalPrice: o.TotalPrice,
		Items:      items,
	}
}

func toOrderInternalView(o model.Order, details []model.OrderDetail) OrderInternalView {
	items := make([]OrderItemInternalView, 0, len(details))
	for _, d := range details {
		items = append(items, OrderItemInternalView{
			UUID:          d.UUID,
			OrderItemView: toOrderItemView(d),
		})
	}
	return OrderInternalView{
		UUID:       o.UUID,
		UserID:     o.UserID,
		OrderDate:  o.OrderDate,
		TotalPrice: o.TotalPrice,
		Items:      items,
	}
}

func toOrderItemView(d model.OrderDetail) OrderItemView {
	return OrderItemView{
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
		Price:     d.Price,
	}
}
