package main

import (
	"log"

	"tableside/config"
	httpapi "tableside/menu-svc/internal/api/http"
	"tableside/menu-svc/internal/service"
	"tableside/menu-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	qr := service.DefaultTableQRGenerator{
		BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost"),
	}

	handler := httpapi.NewHandler(
		service.NewRestaurantService(repo),
		service.NewCuisineService(repo),
		service.NewDishService(repo),
		service.NewTableService(repo, qr),
	)

	addr := ":" + config.GetEnv("MENU_SVC_PORT", "8082")
	httpapi.StartServer(addr, httpapi.NewRouter(handler))
}
