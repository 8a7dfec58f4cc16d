package main

import (
	"log"
	"net/http"

	"tableside/api-gateway/internal/gateway"
	"tableside/config"

	"github.com/rs/cors"
)

func main() {
	cfg := gateway.Config{
		OrderSvcURL:     config.GetEnv("ORDER_SVC_URL", "http://localhost:8081"),
		MenuSvcURL:      config.GetEnv("MENU_SVC_URL", "http://localhost:8082"),
		AnalyticsSvcURL: config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	port := config.GetEnv("GATEWAY_PORT", "8080")
	log.Printf("API Gateway starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
