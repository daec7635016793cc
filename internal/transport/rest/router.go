package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"enableboard/internal/dataset"
	"enableboard/internal/service"
	"enableboard/internal/transport/rest/handler"
	"enableboard/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService    *service.AuthService
	AskService     *service.AskService
	SummaryService *service.SummaryService
	BriefService   *service.BriefService
	Loader         *dataset.Loader
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	askHandler := handler.NewAskHandler(c.AskService)
	summaryHandler := handler.NewSummaryHandler(c.SummaryService)
	briefHandler := handler.NewBriefHandler(c.Loader, c.BriefService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Analyst routes (require analyst auth)
	analystRoutes := v1.NewRoute().Subrouter()
	analystRoutes.Use(authMW.RequireAnalyst)

	analystRoutes.HandleFunc("/ask", askHandler.Ask).Methods("POST", "OPTIONS")
	analystRoutes.HandleFunc("/summary", summaryHandler.Summarize).Methods("POST", "OPTIONS")
	analystRoutes.HandleFunc("/brief", briefHandler.Get).Methods("GET", "OPTIONS")

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
