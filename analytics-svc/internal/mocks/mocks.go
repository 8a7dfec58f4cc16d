package mocks

import (
	"github.com/stretchr/testify/mock"

	"tableside/analytics-svc/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *StoreInterface) RecordOrderCreated(restaurantID int, total float64) error {
	return m.Called(restaurantID, total).Error(0)
}

func (m *StoreInterface) RecordOrderOutcome(restaurantID int, status string) error {
	return m.Called(restaurantID, status).Error(0)
}

func (m *StoreInterface) StatsForDay(restaurantID int, date string) (*domain.OrderStats, error) {
	args := m.Called(restaurantID, date)
	var stats *domain.OrderStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.OrderStats)
	}
	return stats, args.Error(1)
}

func (m *StoreInterface) StatsAllTime(restaurantID int) (*domain.OrderStats, error) {
	args := m.Called(restaurantID)
	var stats *domain.OrderStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.OrderStats)
	}
	return stats, args.Error(1)
}

type AnalyticsInterface struct {
	mock.Mock
}

func (m *AnalyticsInterface) OrdersForRestaurant(restaurantID int, period string) domain.AnalyticsResponse {
	args := m.Called(restaurantID, period)
	return args.Get(0).(domain.AnalyticsResponse)
}
