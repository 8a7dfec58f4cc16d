package httpapi

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Start blocks serving the read-side API. The kafka consumer runs in its
// own goroutine, so this is the last call in main.
func Start(addr string, handler *Handler) {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	log.Printf("Analytics Service listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, cors.Default().Handler(r)))
}
