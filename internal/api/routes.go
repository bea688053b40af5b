package api

import (
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/eastgate-centre/shift-cover/internal/config"
	"github.com/eastgate-centre/shift-cover/pkg/identity"
	"github.com/eastgate-centre/shift-cover/pkg/notify"
	"github.com/eastgate-centre/shift-cover/pkg/postgres"
)

// SetupRoutes wires handlers, middleware and the postgres store into the router
func SetupRoutes(cfg *config.Config, version, buildTime string, database *postgres.DB, logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware(logger))

	ident := identity.ContextProvider{}
	notifier := notify.NewOutbox(database)

	systemHandler := &SystemHandler{}
	subRequestsHandler := NewSubRequestsHandler(database, notifier, ident, cfg, logger)
	availabilityHandler := NewAvailabilityHandler(database, ident, logger)
	shiftsHandler := NewShiftsHandler(database, database, ident, logger)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")

	// API v1 protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(JWTAuthMiddleware(cfg.JWTSecret, logger))

	apiV1.HandleFunc("/sub-requests", subRequestsHandler.Create).Methods("POST")
	apiV1.HandleFunc("/sub-requests", subRequestsHandler.ListMine).Methods("GET")
	apiV1.HandleFunc("/sub-requests/{id}/cancel", subRequestsHandler.Cancel).Methods("POST")
	apiV1.HandleFunc("/sub-requests/{id}/cancel-nomination", subRequestsHandler.CancelNomination).Methods("POST")
	apiV1.HandleFunc("/sub-requests/{id}/accept-nomination", subRequestsHandler.AcceptNomination).Methods("POST")

	apiV1.HandleFunc("/availability", availabilityHandler.Set).Methods("PUT")
	apiV1.HandleFunc("/availability", availabilityHandler.Clear).Methods("DELETE")

	apiV1.HandleFunc("/shifts/{id}/occurrences", shiftsHandler.Occurrences).Methods("GET")
	apiV1.HandleFunc("/shifts/{id}/candidates", shiftsHandler.Candidates).Methods("GET")

	return r
}
