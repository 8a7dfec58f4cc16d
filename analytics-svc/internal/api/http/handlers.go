package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tableside/analytics-svc/internal/service"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/analytics/orders", h.getOrderAnalytics).Methods("GET")
}

func (h *Handler) getOrderAnalytics(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	period := r.URL.Query().Get("period")

	response := h.Analytics.OrdersForRestaurant(restaurantID, period)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
