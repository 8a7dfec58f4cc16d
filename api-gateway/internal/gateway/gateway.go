package gateway

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL     string
	MenuSvcURL      string
	AnalyticsSvcURL string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log.Printf("PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequest(r.Method, url, r.Body)
	if err != nil {
		log.Printf("ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("ERROR: Failed to copy response: %v", err)
	}
}

// RouteHandler dispatches by path prefix. Order placement, carts and the
// order board go to the order service, analytics reads to the analytics
// service, and everything else under the restaurant catalog to the menu
// service.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("ROUTE: %s %s", r.Method, path)

	if strings.HasPrefix(path, "/api/cart") || strings.HasPrefix(path, "/api/orders") {
		g.ProxyRequest(w, r, g.config.OrderSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/restaurants/") {
		switch {
		// Checked first: the analytics paths also contain "/orders".
		case strings.Contains(path, "/analytics"):
			g.ProxyRequest(w, r, g.config.AnalyticsSvcURL)
			return
		case strings.HasSuffix(path, "/checkout"),
			strings.HasSuffix(path, "/tables/available"),
			strings.Contains(path, "/orders"):
			g.ProxyRequest(w, r, g.config.OrderSvcURL)
			return
		}
	}

	if path == "/api/restaurants" || strings.HasPrefix(path, "/api/restaurants/") ||
		path == "/api/cuisines" || strings.HasPrefix(path, "/api/cuisines/") {
		g.ProxyRequest(w, r, g.config.MenuSvcURL)
		return
	}

	log.Printf("[GATEWAY] Unmatched API route: %s", path)
	http.Error(w, "API route not found", http.StatusNotFound)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
