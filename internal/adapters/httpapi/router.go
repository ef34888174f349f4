package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the storefront HTTP router. Auth endpoints and the
// catalog reads are public; the session, search-state, and booking endpoints
// require a bearer token bound to the active session.
func NewRouter(s *Server, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	// Health endpoint for infra checks.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/register", s.handleRegister)

		r.Get("/destinations", s.handleListDestinations)
		r.Get("/packages", s.handleListPackages)
		r.Get("/hotels", s.handleListHotels)
		r.Get("/experiences", s.handleListExperiences)

		r.Group(func(r chi.Router) {
			r.Use(NewAuthMiddleware(jwtSecret, s.Store))

			r.Post("/auth/logout", s.handleLogout)
			r.Get("/me", s.handleMe)

			r.Get("/search", s.handleGetSearch)
			r.Patch("/search", s.handlePatchSearch)

			r.Get("/bookings", s.handleListBookings)
			r.Post("/bookings", s.handleCreateBooking)
			r.Get("/bookings/{bookingId}", s.handleGetBooking)
			r.Post("/bookings/{bookingId}/cancel", s.handleCancelBooking)
		})
	})

	return r
}
