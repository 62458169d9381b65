package api

import (
	"net/http"

	"concrete-booking-service/internal/api/handlers"
	"concrete-booking-service/internal/ports"
	"concrete-booking-service/internal/schedule"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.BookingRepository, sites ports.SiteDirectory, cfg schedule.CheckConfig) http.Handler {
	mux := http.NewServeMux()

	bookingHandler := &handlers.BookingHandler{Repo: repo, Sites: sites, Config: cfg}
	checkHandler := &handlers.CheckHandler{Repo: repo, Sites: sites, Config: cfg}
	siteHandler := &handlers.SiteHandler{Dir: sites}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/sites", siteHandler.List)
	mux.HandleFunc("/bookings", bookingHandler.Handle)
	mux.HandleFunc("/bookings/check", checkHandler.Check)

	return loggingMiddleware(mux)
}
