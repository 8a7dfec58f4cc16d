package service

import (
	"log"
	"time"

	"tableside/analytics-svc/internal/domain"
)

type AnalyticsService struct {
	store StoreInterface
}

func NewAnalyticsService(store StoreInterface) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// OrdersForRestaurant assembles the requested periods. Reads degrade to an
// empty response instead of surfacing storage errors.
func (s *AnalyticsService) OrdersForRestaurant(restaurantID int, period string) domain.AnalyticsResponse {
	response := domain.AnalyticsResponse{}
	switch period {
	case "today":
		response.Today = s.today(restaurantID)
	case "all":
		response.AllTime = s.allTime(restaurantID)
	default:
		response.Today = s.today(restaurantID)
		response.AllTime = s.allTime(restaurantID)
	}
	return response
}

func (s *AnalyticsService) today(restaurantID int) *domain.OrderStats {
	today := time.Now().Format("2006-01-02")
	stats, err := s.store.StatsForDay(restaurantID, today)
	if err != nil {
		log.Printf("WARNING: failed to load daily stats for restaurant %d: %v", restaurantID, err)
		return nil
	}
	return stats
}

func (s *AnalyticsService) allTime(restaurantID int) *domain.OrderStats {
	stats, err := s.store.StatsAllTime(restaurantID)
	if err != nil {
		log.Printf("WARNING: failed to load all-time stats for restaurant %d: %v", restaurantID, err)
		return nil
	}
	return stats
}
