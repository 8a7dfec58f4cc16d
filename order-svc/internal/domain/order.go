package domain

import (
	"fmt"
	"time"
)

// TaxRate is the flat tax applied to every dine-in order.
const TaxRate = 0.15

type OrderType string

const (
	DineIn  OrderType = "dine_in"
	DineOut OrderType = "dine_out"
)

type OrderStatus string

const (
	StatusNew       OrderStatus = "new"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// allowedTransitions lists the legal source -> target status pairs.
// completed and cancelled are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusNew:       {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusNew, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsOpen reports whether the status keeps its table occupied.
func (s OrderStatus) IsOpen() bool {
	return s == StatusNew || s == StatusPreparing
}

type OrderItem struct {
	ID        int     `json:"id,omitempty"`
	OrderID   int     `json:"order_id,omitempty"`
	DishID    int     `json:"dish_id"`
	DishName  string  `json:"dish_name"`
	DishImage string  `json:"dish_image,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Notes     string  `json:"notes,omitempty"`
}

type Order struct {
	ID           int         `json:"id"`
	OrderNumber  string      `json:"order_number"`
	RestaurantID int         `json:"restaurant_id"`
	CustomerID   int         `json:"customer_id"`
	TableNumber  string      `json:"table_number"`
	TableID      *int        `json:"table_id,omitempty"`
	OrderType    OrderType   `json:"order_type"`
	Subtotal     float64     `json:"subtotal"`
	TaxRate      float64     `json:"tax_rate"`
	TaxAmount    float64     `json:"tax_amount"`
	Total        float64     `json:"total"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
	Items        []OrderItem `json:"items"`

	// Staff board annotations, populated on the staff view only.
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}

type RestaurantTable struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	TableNumber  string    `json:"table_number"`
	Capacity     int       `json:"capacity"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// GenerateOrderNumber builds the human-readable label
// TBL<tableNumber>-<last 6 digits of the epoch-millisecond timestamp>.
// It is a display label, not a uniqueness key: the database id is the
// authoritative identity and nothing looks orders up by this value.
func GenerateOrderNumber(tableNumber string, now time.Time) string {
	suffix := now.UnixMilli() % 1000000
	return fmt.Sprintf("TBL%s-%06d", tableNumber, suffix)
}

// OrderEvent is the message published to the order-events topic.
type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	RestaurantID int         `json:"restaurant_id"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	Timestamp    time.Time   `json:"timestamp"`
}

const (
	EventOrderCreated  = "order_created"
	EventStatusChanged = "status_changed"
)
