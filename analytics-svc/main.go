package main

import (
	"context"

	httpapi "tableside/analytics-svc/internal/api/http"
	"tableside/analytics-svc/internal/service"
	"tableside/analytics-svc/internal/storage"
	"tableside/config"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader("order-events", "analytics-svc")
	defer reader.Close()

	store := storage.NewStore(db, rdb)

	consumer := service.NewConsumer(reader, store)
	go consumer.Start(context.Background())

	handler := httpapi.NewHandler(service.NewAnalyticsService(store))

	addr := ":" + config.GetEnv("ANALYTICS_SVC_PORT", "8083")
	httpapi.Start(addr, handler)
}
