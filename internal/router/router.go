package router

import (
	"net/http"
	"strings"

	"sweet-orders/internal/handler"
	"sweet-orders/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(orderHandler *handler.OrderHandler, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Collection routes
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			orderHandler.List(w, r)
		case http.MethodPost:
			orderHandler.Create(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)

	// Item routes: /api/orders/{id}[/status|/print], plus /api/orders/reload
	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/orders/"), "/")
		if rest == "" {
			orderRouteHandler(w, r)
			return
		}
		if rest == "reload" {
			orderHandler.Reload(w, r)
			return
		}

		parts := strings.SplitN(rest, "/", 2)
		id := parts[0]

		if len(parts) == 2 {
			switch {
			case parts[1] == "status" && r.Method == http.MethodPatch:
				orderHandler.SetStatus(w, r, id)
			case parts[1] == "print" && r.Method == http.MethodGet:
				orderHandler.Print(w, r, id)
			default:
				http.Error(w, "not found", http.StatusNotFound)
			}
			return
		}

		switch r.Method {
		case http.MethodGet:
			orderHandler.Get(w, r, id)
		case http.MethodPut:
			orderHandler.Update(w, r, id)
		case http.MethodDelete:
			orderHandler.Delete(w, r, id)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
