package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/service"
)

type Handler struct {
	Checkout service.CheckoutServiceInterface
	Status   service.StatusServiceInterface
	Tables   service.TableServiceInterface
	Views    service.ViewServiceInterface
	Carts    service.CartServiceInterface
}

func NewHandler(checkout service.CheckoutServiceInterface, status service.StatusServiceInterface,
	tables service.TableServiceInterface, views service.ViewServiceInterface,
	carts service.CartServiceInterface) *Handler {
	return &Handler{
		Checkout: checkout,
		Status:   status,
		Tables:   tables,
		Views:    views,
		Carts:    carts,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id}/status", h.updateStatus).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{restaurantId}/tables/available", h.availableTables).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/orders", h.staffBoard).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/orders/my", h.customerOrders).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/metadata", h.setCartMetadata).Methods("PUT")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{dishId}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{dishId}", h.removeCartItem).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// customerID reads the authenticated customer identity. Session verification
// happens upstream; a missing header means an unauthenticated request.
func customerID(r *http.Request) int {
	id, _ := strconv.Atoi(r.Header.Get("X-Customer-ID"))
	return id
}

func staffID(r *http.Request) int {
	id, _ := strconv.Atoi(r.Header.Get("X-Staff-ID"))
	return id
}

func sessionID(r *http.Request) string {
	return r.Header.Get("X-Session-ID")
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeFailure(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]interface{}{"success": false, "message": message})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.RestaurantID = restaurantID

	result, err := h.Checkout.Checkout(r.Context(), customerID(r), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			writeFailure(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrMissingTable):
			writeFailure(w, http.StatusBadRequest, err.Error())
		default:
			writeFailure(w, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.Status.UpdateStatus(r.Context(), staffID(r), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			writeFailure(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrOrderNotFound):
			writeFailure(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrIllegalTransition):
			writeFailure(w, http.StatusBadRequest, err.Error())
		default:
			writeFailure(w, http.StatusInternalServerError, "failed to update status")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) availableTables(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	tables := h.Tables.Available(r.Context(), restaurantID)
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) staffBoard(w http.ResponseWriter, r *http.Request) {
	if staffID(r) <= 0 {
		writeFailure(w, http.StatusUnauthorized, "authentication required")
		return
	}
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	board := h.Views.StaffBoard(r.Context(), restaurantID)
	writeJSON(w, http.StatusOK, board)
}

func (h *Handler) customerOrders(w http.ResponseWriter, r *http.Request) {
	id := customerID(r)
	if id <= 0 {
		writeFailure(w, http.StatusUnauthorized, "authentication required")
		return
	}
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	orders := h.Views.CustomerOrders(r.Context(), restaurantID, id)
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeFailure(w, http.StatusBadRequest, "missing session")
		return
	}
	cart, err := h.Carts.Get(r.Context(), session)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	writeCart(w, cart)
}

func (h *Handler) setCartMetadata(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeFailure(w, http.StatusBadRequest, "missing session")
		return
	}
	var meta domain.CartMetadata
	if err := json.NewDecoder(r.Body).Decode(&meta); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cart, err := h.Carts.SetMetadata(r.Context(), session, meta)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	writeCart(w, cart)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeFailure(w, http.StatusBadRequest, "missing session")
		return
	}
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cart, err := h.Carts.AddItem(r.Context(), session, item)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	writeCart(w, cart)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeFailure(w, http.StatusBadRequest, "missing session")
		return
	}
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])

	var req struct {
		Quantity *int    `json:"quantity,omitempty"`
		Notes    *string `json:"notes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var cart *domain.Cart
	var err error
	switch {
	case req.Quantity != nil:
		cart, err = h.Carts.UpdateQuantity(r.Context(), session, dishID, *req.Quantity)
	case req.Notes != nil:
		cart, err = h.Carts.UpdateNotes(r.Context(), session, dishID, *req.Notes)
	default:
		writeFailure(w, http.StatusBadRequest, "quantity or notes required")
		return
	}
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	writeCart(w, cart)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeFailure(w, http.StatusBadRequest, "missing session")
		return
	}
	dishID, _ := strconv.Atoi(mux.Vars(r)["dishId"])
	cart, err := h.Carts.RemoveItem(r.Context(), session, dishID)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	writeCart(w, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	session := sessionID(r)
	if session == "" {
		writeFailure(w, http.StatusBadRequest, "missing session")
		return
	}
	if err := h.Carts.Clear(r.Context(), session); err != nil {
		writeFailure(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeCart returns the cart together with its derived totals so the client
// never has to recompute them.
func writeCart(w http.ResponseWriter, cart *domain.Cart) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":      cart.Items,
		"metadata":   cart.Metadata,
		"item_count": cart.ItemCount(),
		"subtotal":   cart.Subtotal(),
		"tax":        cart.Tax(),
		"total":      cart.Total(),
	})
}
