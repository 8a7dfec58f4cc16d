package service

import (
	"context"
	"time"

	"tableside/order-svc/internal/domain"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int, status domain.OrderStatus, completedAt *time.Time) error
	ListCustomerOrders(ctx context.Context, restaurantID, customerID int) ([]domain.Order, error)
	ListRestaurantOrders(ctx context.Context, restaurantID int) ([]domain.Order, error)
}

type TableRepository interface {
	ListAvailableTables(ctx context.Context, restaurantID int) ([]domain.RestaurantTable, error)
}

// CartStore is the persistence port for session-scoped carts. The cart itself
// is pure state; durability is injected here.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type BoardCache interface {
	GetBoard(ctx context.Context, restaurantID int) (*OrderBoard, error)
	SetBoard(ctx context.Context, restaurantID int, board *OrderBoard) error
	Invalidate(ctx context.Context, restaurantID int) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, customerID int, req CheckoutRequest) (*CheckoutResult, error)
}

type StatusServiceInterface interface {
	UpdateStatus(ctx context.Context, staffID, orderID int, status domain.OrderStatus) error
}

type TableServiceInterface interface {
	Available(ctx context.Context, restaurantID int) []domain.RestaurantTable
}

type ViewServiceInterface interface {
	CustomerOrders(ctx context.Context, restaurantID, customerID int) []domain.Order
	StaffBoard(ctx context.Context, restaurantID int) *OrderBoard
}

type CartServiceInterface interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionID string, item domain.CartItem) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, sessionID string, dishID, quantity int) (*domain.Cart, error)
	UpdateNotes(ctx context.Context, sessionID string, dishID int, notes string) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, dishID int) (*domain.Cart, error)
	SetMetadata(ctx context.Context, sessionID string, meta domain.CartMetadata) (*domain.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

var (
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
	_ StatusServiceInterface   = (*StatusService)(nil)
	_ TableServiceInterface    = (*TableService)(nil)
	_ ViewServiceInterface     = (*ViewService)(nil)
	_ CartServiceInterface     = (*CartService)(nil)
)
