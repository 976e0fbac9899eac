package routers

import (
	"lexbook-service/internal/app/delivery/http/controllers"
	"lexbook-service/internal/app/delivery/http/middlewares"
	"lexbook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	// Booking is open to anonymous visitors; an account gets provisioned
	// from the contact email when none exists yet.
	router.Post("/", bookingController.CreateAppointment)
	router.Get("/{appointmentID}", bookingController.GetAppointment)
	router.Post("/{appointmentID}/cancel", bookingController.CancelAppointment)

	router.With(
		middlewares.Authenticate,
		middlewares.RequireRoles(constvars.LexbookRoleSuperadmin, constvars.LexbookRoleLawyer),
	).Get("/", bookingController.ListAppointments)
}
