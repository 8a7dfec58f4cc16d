package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tableside/order-svc/internal/domain"
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrEmptyCart    = errors.New("cart has no items")
	ErrMissingTable = errors.New("table selection is required")
)

type CheckoutRequest struct {
	RestaurantID int               `json:"restaurant_id"`
	TableNumber  string            `json:"table_number"`
	OrderType    domain.OrderType  `json:"order_type"`
	Items        []domain.CartItem `json:"items"`
}

type CheckoutResult struct {
	Success     bool   `json:"success"`
	OrderID     int    `json:"order_id,omitempty"`
	OrderNumber string `json:"order_number,omitempty"`
	Message     string `json:"message,omitempty"`
}

type CheckoutService struct {
	repository OrderRepository
	cache      BoardCache
	publisher  EventPublisher
	now        func() time.Time
}

func NewCheckoutService(repository OrderRepository, cache BoardCache, publisher EventPublisher) *CheckoutService {
	return &CheckoutService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Checkout turns a validated cart into a persisted order. The order and its
// item snapshots are written in one transaction; a failed checkout leaves no
// partial order behind.
func (s *CheckoutService) Checkout(ctx context.Context, customerID int, req CheckoutRequest) (*CheckoutResult, error) {
	if customerID <= 0 {
		return nil, ErrUnauthorized
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(req.TableNumber) == "" {
		return nil, ErrMissingTable
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = domain.DineIn
	}

	subtotal := 0.0
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		subtotal += item.Price * float64(item.Quantity)
		items = append(items, domain.OrderItem{
			DishID:    item.DishID,
			DishName:  item.DishName,
			DishImage: item.DishImage,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Notes:     item.Notes,
		})
	}

	now := s.now()
	taxAmount := subtotal * domain.TaxRate
	order := &domain.Order{
		OrderNumber:  domain.GenerateOrderNumber(req.TableNumber, now),
		RestaurantID: req.RestaurantID,
		CustomerID:   customerID,
		TableNumber:  req.TableNumber,
		OrderType:    orderType,
		Subtotal:     subtotal,
		TaxRate:      domain.TaxRate,
		TaxAmount:    taxAmount,
		Total:        subtotal + taxAmount,
		Status:       domain.StatusNew,
		CreatedAt:    now,
		Items:        items,
	}

	if err := s.repository.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.cache.Invalidate(ctx, order.RestaurantID); err != nil {
		log.Printf("WARNING: failed to invalidate board cache for restaurant %d: %v", order.RestaurantID, err)
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:         domain.EventOrderCreated,
			OrderID:      order.ID,
			RestaurantID: order.RestaurantID,
			Status:       order.Status,
			Total:        order.Total,
			Timestamp:    now,
		}
		if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("WARNING: failed to publish order_created event for order %d: %v", order.ID, err)
		}
	}

	return &CheckoutResult{
		Success:     true,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
	}, nil
}
