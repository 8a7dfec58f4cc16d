package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"tableside/order-svc/internal/domain"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrIllegalTransition = errors.New("status transition not allowed")
)

type StatusService struct {
	repository OrderRepository
	cache      BoardCache
	publisher  EventPublisher
	now        func() time.Time
}

func NewStatusService(repository OrderRepository, cache BoardCache, publisher EventPublisher) *StatusService {
	return &StatusService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		now:        time.Now,
	}
}

// UpdateStatus moves an order along its lifecycle. Only transitions in the
// domain transition table are accepted; completing an order stamps
// completed_at.
func (s *StatusService) UpdateStatus(ctx context.Context, staffID, orderID int, status domain.OrderStatus) error {
	if staffID <= 0 {
		return ErrUnauthorized
	}
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}

	order, err := s.repository.GetOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to load order %d: %w", orderID, err)
	}
	if order == nil {
		return ErrOrderNotFound
	}

	if !domain.CanTransition(order.Status, status) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, status)
	}

	var completedAt *time.Time
	if status == domain.StatusCompleted {
		now := s.now()
		completedAt = &now
	}

	if err := s.repository.UpdateOrderStatus(ctx, orderID, status, completedAt); err != nil {
		return fmt.Errorf("failed to update order %d status: %w", orderID, err)
	}

	if err := s.cache.Invalidate(ctx, order.RestaurantID); err != nil {
		log.Printf("WARNING: failed to invalidate board cache for restaurant %d: %v", order.RestaurantID, err)
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:         domain.EventStatusChanged,
			OrderID:      orderID,
			RestaurantID: order.RestaurantID,
			Status:       status,
			Total:        order.Total,
			Timestamp:    s.now(),
		}
		if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("WARNING: failed to publish status_changed event for order %d: %v", orderID, err)
		}
	}

	return nil
}
