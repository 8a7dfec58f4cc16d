package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"tableside/analytics-svc/internal/domain"
)

type Consumer struct {
	Reader *kafka.Reader
	Store  StoreInterface
}

func NewConsumer(reader *kafka.Reader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Analytics Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(event)
	}
}

func (c *Consumer) ProcessEvent(event domain.OrderEvent) {
	switch event.Type {
	case "order_created":
		log.Printf("Processing order_created: OrderID=%d, RestaurantID=%d, Total=%.2f",
			event.OrderID, event.RestaurantID, event.Total)
		if err := c.Store.RecordOrderCreated(event.RestaurantID, event.Total); err != nil {
			log.Printf("Error recording created order: %v", err)
		}
	case "status_changed":
		// Only terminal outcomes matter for the aggregates.
		if event.Status != "completed" && event.Status != "cancelled" {
			return
		}
		log.Printf("Processing status_changed: OrderID=%d, RestaurantID=%d, Status=%s",
			event.OrderID, event.RestaurantID, event.Status)
		if err := c.Store.RecordOrderOutcome(event.RestaurantID, event.Status); err != nil {
			log.Printf("Error recording order outcome: %v", err)
		}
	}
}
