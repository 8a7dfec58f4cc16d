package service

import (
	"context"

	"tableside/analytics-svc/internal/domain"
	"tableside/analytics-svc/internal/storage"
)

type StoreInterface interface {
	RecordOrderCreated(restaurantID int, total float64) error
	RecordOrderOutcome(restaurantID int, status string) error
	StatsForDay(restaurantID int, date string) (*domain.OrderStats, error)
	StatsAllTime(restaurantID int) (*domain.OrderStats, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(event domain.OrderEvent)
}

type AnalyticsInterface interface {
	OrdersForRestaurant(restaurantID int, period string) domain.AnalyticsResponse
}

var _ StoreInterface = (*storage.Store)(nil)
var _ AnalyticsInterface = (*AnalyticsService)(nil)
