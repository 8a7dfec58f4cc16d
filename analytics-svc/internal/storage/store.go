package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside/analytics-svc/internal/domain"
)

const statsTTL = 30 * 24 * time.Hour

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func dailyKey(date string, restaurantID int) string {
	return fmt.Sprintf("analytics:orders:%s:%d", date, restaurantID)
}

func (s *Store) RecordOrderCreated(restaurantID int, total float64) error {
	key := dailyKey(time.Now().Format("2006-01-02"), restaurantID)
	if err := s.rdb.HIncrBy(s.ctx, key, "order_count", 1).Err(); err != nil {
		return err
	}
	if err := s.rdb.HIncrByFloat(s.ctx, key, "revenue", total).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, key, statsTTL)
	return nil
}

func (s *Store) RecordOrderOutcome(restaurantID int, status string) error {
	key := dailyKey(time.Now().Format("2006-01-02"), restaurantID)
	if err := s.rdb.HIncrBy(s.ctx, key, status, 1).Err(); err != nil {
		return err
	}
	s.rdb.Expire(s.ctx, key, statsTTL)
	return nil
}

// StatsForDay reads the cached hash and falls back to the orders table when
// Redis has nothing for that day.
func (s *Store) StatsForDay(restaurantID int, date string) (*domain.OrderStats, error) {
	fields, err := s.rdb.HGetAll(s.ctx, dailyKey(date, restaurantID)).Result()
	if err == nil && len(fields) > 0 {
		stats := &domain.OrderStats{RestaurantID: restaurantID, Date: date}
		fmt.Sscanf(fields["order_count"], "%d", &stats.OrderCount)
		fmt.Sscanf(fields["revenue"], "%f", &stats.Revenue)
		fmt.Sscanf(fields["completed"], "%d", &stats.Completed)
		fmt.Sscanf(fields["cancelled"], "%d", &stats.Cancelled)
		return stats, nil
	}

	return s.statsForDayFromDB(restaurantID, date)
}

func (s *Store) statsForDayFromDB(restaurantID int, date string) (*domain.OrderStats, error) {
	stats := &domain.OrderStats{RestaurantID: restaurantID, Date: date}
	err := s.db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(total), 0),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'cancelled')
		FROM orders
		WHERE restaurant_id = $1 AND created_at::date = $2::date`,
		restaurantID, date).
		Scan(&stats.OrderCount, &stats.Revenue, &stats.Completed, &stats.Cancelled)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) StatsAllTime(restaurantID int) (*domain.OrderStats, error) {
	stats := &domain.OrderStats{RestaurantID: restaurantID}
	err := s.db.QueryRow(`
		SELECT COUNT(*),
			COALESCE(SUM(total), 0),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status = 'cancelled')
		FROM orders
		WHERE restaurant_id = $1`, restaurantID).
		Scan(&stats.OrderCount, &stats.Revenue, &stats.Completed, &stats.Cancelled)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
