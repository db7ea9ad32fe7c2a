package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"dealersurvey/internal/service"
	"dealersurvey/internal/transport/rest/handler"
	"dealersurvey/internal/transport/rest/middleware"
	"dealersurvey/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService
	CatalogService *service.CatalogService
	SubmitService  *service.SubmitService
	StatsService   *service.StatsService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	catalogHandler := handler.NewCatalogHandler(c.CatalogService)
	submitHandler := handler.NewSubmitHandler(c.SubmitService, c.StatsService)
	wsHandler := ws.NewHandler(c.WSHub)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/questions", catalogHandler.List).Methods("GET", "OPTIONS")

	// Opening a session requires a dealer link
	v1.Handle("/sessions", middleware.RequireDealerLink(http.HandlerFunc(sessionHandler.Start))).Methods("POST", "OPTIONS")

	// Dealer observability (dealer link required)
	v1.Handle("/stats", middleware.RequireDealerLink(http.HandlerFunc(submitHandler.Stats))).Methods("GET", "OPTIONS")
	v1.Handle("/attempts", middleware.RequireDealerLink(http.HandlerFunc(submitHandler.Attempts))).Methods("GET", "OPTIONS")

	// WebSocket outcome feed (dealer link required, token in query param)
	v1.Handle("/ws/feed", middleware.RequireDealerLink(http.HandlerFunc(wsHandler.Feed))).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Session routes (require session token)
	sessionRoutes := v1.NewRoute().Subrouter()
	sessionRoutes.Use(authMW.RequireSession)

	sessionRoutes.HandleFunc("/sessions/respondent", sessionHandler.SetRespondent).Methods("PUT", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/answers/{index}", sessionHandler.SetAnswer).Methods("PUT", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/reset", sessionHandler.Reset).Methods("POST", "OPTIONS")
	sessionRoutes.HandleFunc("/sessions/submit", submitHandler.Submit).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
