package domain

import "time"

// OrderEvent mirrors the payload the order service publishes to the
// order-events topic.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

type OrderStats struct {
	RestaurantID int     `json:"restaurant_id"`
	Date         string  `json:"date,omitempty"`
	OrderCount   int     `json:"order_count"`
	Revenue      float64 `json:"revenue"`
	Completed    int     `json:"completed"`
	Cancelled    int     `json:"cancelled"`
}

type AnalyticsResponse struct {
	Today   *OrderStats `json:"today,omitempty"`
	AllTime *OrderStats `json:"all_time,omitempty"`
}
