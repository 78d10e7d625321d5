package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rinserepeat/ordertrack/internal/customerror"
	"github.com/rinserepeat/ordertrack/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) Append(ctx context.Context, order models.Order, prices models.PriceList) error {
	args := m.Called(ctx, order, prices)
	return args.Error(0)
}

func (m *MockOrderRepository) ApplyTransition(ctx context.Context, orderID int, ws models.WriteSet) error {
	args := m.Called(ctx, orderID, ws)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByOrderID(ctx context.Context, orderID int) (*models.Customer, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Append(ctx context.Context, customer models.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) Get(ctx context.Context) (models.PriceList, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.PriceList), args.Error(1)
}

func testPriceList() models.PriceList {
	return models.PriceList{Items: []models.PriceItem{
		{Name: "Shirt", Price: models.Money{Symbol: "€", Amount: 2}},
		{Name: "Pants", Price: models.Money{Symbol: "€", Amount: 3}},
	}}
}

func newTestService(orders *MockOrderRepository, customers *MockCustomerRepository, prices *MockPriceRepository) *OrderService {
	svc := NewOrderService(orders, customers, prices)
	svc.now = func() time.Time {
		return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	// Arrange
	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	prices := new(MockPriceRepository)
	svc := newTestService(orders, customers, prices)

	prices.On("Get", mock.Anything).Return(testPriceList(), nil)
	orders.On("GetAll", mock.Anything).Return([]models.Order{{ID: 3}, {ID: 7}}, nil)

	expectedOrder := models.Order{
		ID:             8,
		Status:         models.StatusDroppedOff,
		DroppedOffDate: "2024-06-01",
		Total:          models.Money{Symbol: "€", Amount: 7},
		ItemCounts:     map[string]int{"Shirt": 2, "Pants": 1},
	}
	orders.On("Append", mock.Anything, expectedOrder, testPriceList()).Return(nil)
	customers.On("Append", mock.Anything, models.Customer{
		OrderID: 8, Name: "A", Email: "a@x.com", Mobile: "123",
	}).Return(nil)

	// Act
	created, err := svc.CreateOrder(context.Background(),
		CustomerInfo{Name: "A", Email: "a@x.com", Mobile: "123"},
		map[string]int{"Shirt": 2, "Pants": 1},
	)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expectedOrder, *created)
	orders.AssertExpectations(t)
	customers.AssertExpectations(t)
}

func TestOrderService_CreateOrder_MissingItemCountsAsZero(t *testing.T) {
	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	prices := new(MockPriceRepository)
	svc := newTestService(orders, customers, prices)

	prices.On("Get", mock.Anything).Return(testPriceList(), nil)
	orders.On("GetAll", mock.Anything).Return([]models.Order{}, nil)
	orders.On("Append", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	customers.On("Append", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreateOrder(context.Background(),
		CustomerInfo{Name: "A", Email: "a@x.com", Mobile: "123"},
		map[string]int{"Shirt": 1},
	)

	require.NoError(t, err)
	assert.Equal(t, 1, created.ID, "empty store allocates id 1")
	assert.Equal(t, models.Money{Symbol: "€", Amount: 2}, created.Total)
	assert.Equal(t, map[string]int{"Shirt": 1, "Pants": 0}, created.ItemCounts)
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	prices := new(MockPriceRepository)
	svc := newTestService(orders, customers, prices)

	_, err := svc.CreateOrder(context.Background(),
		CustomerInfo{Name: "", Email: "a@x.com", Mobile: "123"}, nil)
	assert.True(t, customerror.IsValidation(err))

	prices.On("Get", mock.Anything).Return(testPriceList(), nil)

	_, err = svc.CreateOrder(context.Background(),
		CustomerInfo{Name: "A", Email: "a@x.com", Mobile: "123"},
		map[string]int{"Shirt": -1})
	assert.True(t, customerror.IsValidation(err))

	_, err = svc.CreateOrder(context.Background(),
		CustomerInfo{Name: "A", Email: "a@x.com", Mobile: "123"},
		map[string]int{"Tuxedo": 1})
	assert.True(t, customerror.IsValidation(err), "item types outside the price list are not representable")

	orders.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything)
	customers.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestOrderService_CreateOrder_CustomerAppendFails(t *testing.T) {
	orders := new(MockOrderRepository)
	customers := new(MockCustomerRepository)
	prices := new(MockPriceRepository)
	svc := newTestService(orders, customers, prices)

	prices.On("Get", mock.Anything).Return(testPriceList(), nil)
	orders.On("GetAll", mock.Anything).Return([]models.Order{}, nil)
	orders.On("Append", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	customers.On("Append", mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))

	_, err := svc.CreateOrder(context.Background(),
		CustomerInfo{Name: "A", Email: "a@x.com", Mobile: "123"},
		map[string]int{"Shirt": 1})

	// The order row is already written at this point; the failure surfaces.
	assert.Error(t, err)
	orders.AssertExpectations(t)
}

func TestOrderService_Transition_Success(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := newTestService(orders, new(MockCustomerRepository), new(MockPriceRepository))

	stored := models.Order{ID: 1, Status: models.StatusDroppedOff, DroppedOffDate: "2024-05-30"}
	orders.On("GetAll", mock.Anything).Return([]models.Order{stored}, nil)
	orders.On("ApplyTransition", mock.Anything, 1, models.WriteSet{
		Status:    models.StatusReadyForPickup,
		StampDate: "2024-06-01",
		Clear:     []models.OrderStatus{models.StatusPickedUp},
	}).Return(nil)

	updated, err := svc.Transition(context.Background(), 1, models.StatusReadyForPickup)

	require.NoError(t, err)
	assert.Equal(t, models.StatusReadyForPickup, updated.Status)
	assert.Equal(t, "2024-06-01", updated.ReadyForPickupDate)
	assert.Equal(t, "", updated.PickedUpDate)
	orders.AssertExpectations(t)
}

func TestOrderService_Transition_NotFound(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := newTestService(orders, new(MockCustomerRepository), new(MockPriceRepository))

	orders.On("GetAll", mock.Anything).Return([]models.Order{{ID: 2}}, nil)

	_, err := svc.Transition(context.Background(), 1, models.StatusReadyForPickup)

	assert.True(t, customerror.IsNotFound(err))
	orders.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_TransitionAll_BestEffort(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := newTestService(orders, new(MockCustomerRepository), new(MockPriceRepository))

	batch := []models.Order{
		{ID: 1, Status: models.StatusDroppedOff},
		{ID: 2, Status: models.StatusDroppedOff},
		{ID: 3, Status: models.StatusDroppedOff},
	}
	orders.On("ApplyTransition", mock.Anything, 1, mock.Anything).Return(nil)
	orders.On("ApplyTransition", mock.Anything, 2, mock.Anything).Return(errors.New("api unavailable"))
	orders.On("ApplyTransition", mock.Anything, 3, mock.Anything).Return(nil)

	err := svc.TransitionAll(context.Background(), batch, models.StatusReadyForPickup)

	// The failure is reported, but the later order was still attempted.
	assert.ErrorContains(t, err, "order 2")
	orders.AssertNumberOfCalls(t, "ApplyTransition", 3)
}

func TestOrderService_TransitionAll_UnknownStatus(t *testing.T) {
	orders := new(MockOrderRepository)
	svc := newTestService(orders, new(MockCustomerRepository), new(MockPriceRepository))

	err := svc.TransitionAll(context.Background(), []models.Order{{ID: 1}}, models.OrderStatus("Lost"))

	assert.True(t, customerror.IsValidation(err))
	orders.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything, mock.Anything)
}
