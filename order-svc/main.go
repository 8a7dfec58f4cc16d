package main

import (
	"context"
	"log"
	"net/http"

	"tableside/config"
	httpapi "tableside/order-svc/internal/api/http"
	"tableside/order-svc/internal/service"
	"tableside/order-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter("order-events")
	defer writer.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	boardCache := storage.NewRedisBoardCache(rdb)
	cartStore := storage.NewRedisCartStore(rdb)
	publisher := storage.NewKafkaPublisher(writer)

	handler := httpapi.NewHandler(
		service.NewCheckoutService(repository, boardCache, publisher),
		service.NewStatusService(repository, boardCache, publisher),
		service.NewTableService(repository),
		service.NewViewService(repository, boardCache),
		service.NewCartService(cartStore),
	)

	addr := ":" + config.GetEnv("ORDER_SVC_PORT", "8081")
	log.Println("Order Service starting on", addr)
	log.Fatal(http.ListenAndServe(addr, httpapi.NewRouter(handler)))
}
