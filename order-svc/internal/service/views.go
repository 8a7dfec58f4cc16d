package service

import (
	"context"
	"log"

	"tableside/order-svc/internal/domain"
)

// OrderBoard is the staff-facing projection: every order for the restaurant
// plus live tab counts.
type OrderBoard struct {
	Orders []domain.Order `json:"orders"`
	Counts BoardCounts    `json:"counts"`
}

type BoardCounts struct {
	All       int `json:"all"`
	New       int `json:"new"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Completed int `json:"completed"`
}

type ViewService struct {
	repository OrderRepository
	cache      BoardCache
}

func NewViewService(repository OrderRepository, cache BoardCache) *ViewService {
	return &ViewService{repository: repository, cache: cache}
}

// CustomerOrders returns the orders a customer placed at one restaurant,
// newest first. Read faults degrade to empty.
func (s *ViewService) CustomerOrders(ctx context.Context, restaurantID, customerID int) []domain.Order {
	orders, err := s.repository.ListCustomerOrders(ctx, restaurantID, customerID)
	if err != nil {
		log.Printf("WARNING: failed to list orders for customer %d at restaurant %d: %v", customerID, restaurantID, err)
		return []domain.Order{}
	}
	if orders == nil {
		return []domain.Order{}
	}
	return orders
}

// StaffBoard returns the full order board for a restaurant, served from the
// cache when a checkout or status update has not invalidated it.
func (s *ViewService) StaffBoard(ctx context.Context, restaurantID int) *OrderBoard {
	if cached, err := s.cache.GetBoard(ctx, restaurantID); err == nil && cached != nil {
		return cached
	}

	orders, err := s.repository.ListRestaurantOrders(ctx, restaurantID)
	if err != nil {
		log.Printf("WARNING: failed to list orders for restaurant %d: %v", restaurantID, err)
		return &OrderBoard{Orders: []domain.Order{}}
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	board := &OrderBoard{Orders: orders, Counts: countByStatus(orders)}

	if err := s.cache.SetBoard(ctx, restaurantID, board); err != nil {
		log.Printf("WARNING: failed to cache board for restaurant %d: %v", restaurantID, err)
	}

	return board
}

func countByStatus(orders []domain.Order) BoardCounts {
	counts := BoardCounts{All: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case domain.StatusNew:
			counts.New++
		case domain.StatusPreparing:
			counts.Preparing++
		case domain.StatusReady:
			counts.Ready++
		case domain.StatusCompleted:
			counts.Completed++
		}
	}
	return counts
}
