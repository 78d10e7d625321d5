package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rinserepeat/ordertrack/internal/customerror"
	"github.com/rinserepeat/ordertrack/internal/logger"
	"github.com/rinserepeat/ordertrack/internal/models"
	"go.uber.org/zap"
)

type OrderRepositoryI interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	Append(ctx context.Context, order models.Order, prices models.PriceList) error
	ApplyTransition(ctx context.Context, orderID int, ws models.WriteSet) error
}

type CustomerRepositoryI interface {
	GetByOrderID(ctx context.Context, orderID int) (*models.Customer, error)
	Append(ctx context.Context, customer models.Customer) error
}

type PriceRepositoryI interface {
	Get(ctx context.Context) (models.PriceList, error)
}

type CustomerInfo struct {
	Name   string
	Email  string
	Mobile string
}

type OrderService struct {
	orders    OrderRepositoryI
	customers CustomerRepositoryI
	prices    PriceRepositoryI
	now       func() time.Time
}

func NewOrderService(orders OrderRepositoryI, customers CustomerRepositoryI, prices PriceRepositoryI) *OrderService {
	return &OrderService{orders: orders, customers: customers, prices: prices, now: time.Now}
}

func (service *OrderService) today() string {
	return service.now().Format(models.DateLayout)
}

func (service *OrderService) Orders(ctx context.Context) ([]models.Order, error) {
	return service.orders.GetAll(ctx)
}

func (service *OrderService) OrdersWithStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	orders, err := service.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(orders, status), nil
}

func (service *OrderService) OrderByID(ctx context.Context, id int) (*models.Order, error) {
	orders, err := service.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := FilterByID(orders, id)
	if len(matched) == 0 {
		return nil, customerror.NewNotFoundError("order", id)
	}
	return &matched[0], nil
}

func (service *OrderService) CustomerForOrder(ctx context.Context, orderID int) (*models.Customer, error) {
	return service.customers.GetByOrderID(ctx, orderID)
}

func (service *OrderService) PriceList(ctx context.Context) (models.PriceList, error) {
	return service.prices.Get(ctx)
}

// Transition moves the order to the target status and returns the order as
// persisted. The caller does not guarantee existence; a missing id is a
// NotFoundError.
func (service *OrderService) Transition(ctx context.Context, orderID int, target models.OrderStatus) (*models.Order, error) {
	order, err := service.OrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	ws, err := TransitionWriteSet(*order, target, service.today())
	if err != nil {
		return nil, err
	}
	if err := service.orders.ApplyTransition(ctx, order.ID, ws); err != nil {
		return nil, err
	}
	updated := ws.Apply(*order)
	return &updated, nil
}

// TransitionAll applies the transition to each order in sequence order,
// best-effort: a failed order is logged and reported, earlier successes are
// not rolled back and later orders are still attempted.
func (service *OrderService) TransitionAll(ctx context.Context, orders []models.Order, target models.OrderStatus) error {
	if !target.Valid() {
		return customerror.NewValidationError(fmt.Sprintf("unknown order status %q", target))
	}
	var errs []error
	for _, order := range orders {
		ws, err := TransitionWriteSet(order, target, service.today())
		if err != nil {
			return err
		}
		if err := service.orders.ApplyTransition(ctx, order.ID, ws); err != nil {
			logger.Log.Warn("order transition failed",
				zap.Int("order_id", order.ID),
				zap.String("target", string(target)),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("order %d: %w", order.ID, err))
		}
	}
	return errors.Join(errs...)
}

// CreateOrder computes the total from the price list, allocates the next id
// and persists the order and customer rows. The two appends are independent;
// if the second fails the order row has no matching customer, which the store
// cannot make atomic.
func (service *OrderService) CreateOrder(ctx context.Context, customer CustomerInfo, itemCounts map[string]int) (*models.Order, error) {
	if customer.Name == "" {
		return nil, customerror.NewValidationError("customer name cannot be empty")
	}
	if customer.Email == "" {
		return nil, customerror.NewValidationError("customer email cannot be empty")
	}
	if customer.Mobile == "" {
		return nil, customerror.NewValidationError("customer mobile cannot be empty")
	}

	prices, err := service.prices.Get(ctx)
	if err != nil {
		return nil, err
	}
	for name, count := range itemCounts {
		if count < 0 {
			return nil, customerror.NewValidationError(fmt.Sprintf("count for %q cannot be negative", name))
		}
		if _, known := prices.PriceFor(name); !known {
			return nil, customerror.NewValidationError(fmt.Sprintf("unknown item type %q", name))
		}
	}

	orders, err := service.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	total := models.Money{Symbol: prices.Currency()}
	counts := make(map[string]int, len(prices.Items))
	for _, item := range prices.Items {
		count := itemCounts[item.Name]
		counts[item.Name] = count
		total.Amount += float64(count) * item.Price.Amount
	}

	order := models.Order{
		ID:             NextID(orders),
		Status:         models.StatusDroppedOff,
		DroppedOffDate: service.today(),
		Total:          total,
		ItemCounts:     counts,
	}
	if err := service.orders.Append(ctx, order, prices); err != nil {
		return nil, err
	}

	err = service.customers.Append(ctx, models.Customer{
		OrderID: order.ID,
		Name:    customer.Name,
		Email:   customer.Email,
		Mobile:  customer.Mobile,
	})
	if err != nil {
		logger.Log.Error("customer row not written, order row has no matching customer",
			zap.Int("order_id", order.ID),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("order created",
		zap.Int("order_id", order.ID),
		zap.String("total", order.Total.String()),
	)
	return &order, nil
}
