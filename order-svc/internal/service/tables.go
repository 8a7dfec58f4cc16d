package service

import (
	"context"
	"log"

	"tableside/order-svc/internal/domain"
)

type TableService struct {
	repository TableRepository
}

func NewTableService(repository TableRepository) *TableService {
	return &TableService{repository: repository}
}

// Available returns the active tables with no open order, ascending by table
// number. Query faults degrade to an empty result: callers cannot tell an
// error from a restaurant with no free tables.
func (s *TableService) Available(ctx context.Context, restaurantID int) []domain.RestaurantTable {
	tables, err := s.repository.ListAvailableTables(ctx, restaurantID)
	if err != nil {
		log.Printf("WARNING: failed to list available tables for restaurant %d: %v", restaurantID, err)
		return []domain.RestaurantTable{}
	}
	if tables == nil {
		return []domain.RestaurantTable{}
	}
	return tables
}
