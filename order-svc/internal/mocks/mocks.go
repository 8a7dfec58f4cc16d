package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/service"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	var order *domain.Order
	if args.Get(0) != nil {
		order = args.Get(0).(*domain.Order)
	}
	return order, args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus, completedAt *time.Time) error {
	args := m.Called(ctx, orderID, status, completedAt)
	return args.Error(0)
}

func (m *OrderRepository) ListCustomerOrders(ctx context.Context, restaurantID, customerID int) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID, customerID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) ListRestaurantOrders(ctx context.Context, restaurantID int) ([]domain.Order, error) {
	args := m.Called(ctx, restaurantID)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

type TableRepository struct {
	mock.Mock
}

func NewTableRepository(t testingT) *TableRepository {
	m := &TableRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *TableRepository) ListAvailableTables(ctx context.Context, restaurantID int) ([]domain.RestaurantTable, error) {
	args := m.Called(ctx, restaurantID)
	var tables []domain.RestaurantTable
	if args.Get(0) != nil {
		tables = args.Get(0).([]domain.RestaurantTable)
	}
	return tables, args.Error(1)
}

type CartStore struct {
	mock.Mock
}

func NewCartStore(t testingT) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	args := m.Called(ctx, sessionID)
	var cart *domain.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*domain.Cart)
	}
	return cart, args.Error(1)
}

func (m *CartStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	args := m.Called(ctx, sessionID, cart)
	return args.Error(0)
}

func (m *CartStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type BoardCache struct {
	mock.Mock
}

func NewBoardCache(t testingT) *BoardCache {
	m := &BoardCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BoardCache) GetBoard(ctx context.Context, restaurantID int) (*service.OrderBoard, error) {
	args := m.Called(ctx, restaurantID)
	var board *service.OrderBoard
	if args.Get(0) != nil {
		board = args.Get(0).(*service.OrderBoard)
	}
	return board, args.Error(1)
}

func (m *BoardCache) SetBoard(ctx context.Context, restaurantID int, board *service.OrderBoard) error {
	args := m.Called(ctx, restaurantID, board)
	return args.Error(0)
}

func (m *BoardCache) Invalidate(ctx context.Context, restaurantID int) error {
	args := m.Called(ctx, restaurantID)
	return args.Error(0)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
