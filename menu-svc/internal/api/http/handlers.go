package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tableside/menu-svc/internal/domain"
	"tableside/menu-svc/internal/service"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Cuisines    service.CuisineServiceInterface
	Dishes      service.DishServiceInterface
	Tables      service.TableServiceInterface
}

func NewHandler(restSvc service.RestaurantServiceInterface, cuisineSvc service.CuisineServiceInterface,
	dishSvc service.DishServiceInterface, tableSvc service.TableServiceInterface) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Cuisines:    cuisineSvc,
		Dishes:      dishSvc,
		Tables:      tableSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cuisines", h.createCuisine).Methods("POST")
	r.HandleFunc("/api/cuisines", h.getCuisines).Methods("GET")
	r.HandleFunc("/api/cuisines/{id}", h.updateCuisine).Methods("PUT")
	r.HandleFunc("/api/cuisines/{id}", h.deleteCuisine).Methods("DELETE")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/by-slug/{slug}", h.getRestaurantBySlug).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/features", h.replaceFeatures).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/social-links", h.replaceSocialLinks).Methods("PUT")

	r.HandleFunc("/api/restaurants/{restaurantId}/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories/{categoryId}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/categories/{categoryId}", h.deleteCategory).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.getRestaurantDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.getDish).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.updateDish).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables", h.getTables).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables/{tableId}/active", h.setTableActive).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables/{tableId}/qrcode", h.getTableQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createCuisine(w http.ResponseWriter, r *http.Request) {
	var cuisine domain.Cuisine
	if err := json.NewDecoder(r.Body).Decode(&cuisine); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Cuisines.Create(&cuisine); err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cuisine)
}

func (h *Handler) getCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.Cuisines.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cuisines)
}

func (h *Handler) updateCuisine(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var cuisine domain.Cuisine
	if err := json.NewDecoder(r.Body).Decode(&cuisine); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cuisine.ID = id
	if err := h.Cuisines.Update(&cuisine); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Cuisine not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cuisine)
}

func (h *Handler) deleteCuisine(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Cuisines.Delete(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Cuisine not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurants.Create(&rest); err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rest)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	cuisineID, _ := strconv.Atoi(r.URL.Query().Get("cuisine_id"))
	restaurants, err := h.Restaurants.List(cuisineID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, err := h.Restaurants.Get(id)
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rest)
}

func (h *Handler) getRestaurantBySlug(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.GetBySlug(mux.Vars(r)["slug"])
	if err != nil {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rest.ID = id
	if err := h.Restaurants.Update(&rest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rest)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rows, err := h.Restaurants.Delete(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) replaceFeatures(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var features []domain.Feature
	if err := json.NewDecoder(r.Body).Decode(&features); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurants.ReplaceFeatures(id, features); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(features)
}

func (h *Handler) replaceSocialLinks(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var links []domain.SocialLink
	if err := json.NewDecoder(r.Body).Decode(&links); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurants.ReplaceSocialLinks(id, links); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(links)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var category domain.DishCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	category.RestaurantID = restaurantID
	if err := h.Dishes.CreateCategory(&category); err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(category)
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	categories, err := h.Dishes.ListCategories(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(categories)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	categoryID, _ := strconv.Atoi(mux.Vars(r)["categoryId"])
	var category domain.DishCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	category.ID = categoryID
	category.RestaurantID = restaurantID
	if err := h.Dishes.UpdateCategory(&category); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	categoryID, _ := strconv.Atoi(mux.Vars(r)["categoryId"])
	rows, err := h.Dishes.DeleteCategory(restaurantID, categoryID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.RestaurantID = restaurantID
	if err := h.Dishes.Create(&dish); err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dish)
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("category_id"))
	dishes, err := h.Dishes.List(restaurantID, categoryID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	dish, err := h.Dishes.Get(restaurantID, dishID)
	if err != nil {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dish)
}

func (h *Handler) updateDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish.ID = dishID
	dish.RestaurantID = restaurantID
	if err := h.Dishes.Update(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	rows, err := h.Dishes.Delete(restaurantID, dishID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Dish not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	var table domain.RestaurantTable
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	table.RestaurantID = restaurantID
	if err := h.Tables.Create(&table); err != nil {
		if errors.Is(err, service.ErrInvalidPayload) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(table)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	tables, err := h.Tables.List(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tables)
}

func (h *Handler) setTableActive(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	tableID, _ := strconv.Atoi(mux.Vars(r)["tableId"])

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := h.Tables.SetActive(restaurantID, tableID, req.IsActive)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == 0 {
		http.Error(w, "Table not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"is_active": req.IsActive})
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	tableID, _ := strconv.Atoi(mux.Vars(r)["tableId"])

	qrCode, err := h.Tables.QRCode(restaurantID, tableID)
	if err != nil {
		http.Error(w, "Table not found", http.StatusNotFound)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}
