package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Toura-Alpha/dev-event-plateform/docs"
	"github.com/Toura-Alpha/dev-event-plateform/internal/delivery/http/controllers"
	"github.com/Toura-Alpha/dev-event-plateform/internal/delivery/http/middleware"
	"github.com/Toura-Alpha/dev-event-plateform/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Reading events and creating bookings are public; event mutation and
// booking administration require a Bearer token.
func NewRouter(
	eventController *controllers.EventController,
	bookingController *controllers.BookingController,
	authController *controllers.AuthController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Public API
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{slug}", eventController.GetEventBySlug)
	mux.HandleFunc("POST /bookings", bookingController.CreateBooking)

	// Admin API
	mux.HandleFunc("POST /events", requireAuth(eventController.CreateEvent))
	mux.HandleFunc("PUT /events/{eventID}", requireAuth(eventController.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", requireAuth(eventController.DeleteEvent))
	mux.HandleFunc("GET /events/{eventID}/bookings", requireAuth(eventController.ListEventBookings))
	mux.HandleFunc("PUT /bookings/{bookingID}", requireAuth(bookingController.UpdateBooking))

	// Auth
	mux.HandleFunc("POST /auth/signup", authController.SignUp)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
