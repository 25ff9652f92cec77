package routers

import (
	"vitaliv-service/internal/app/delivery/http/middlewares"
	"vitaliv-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.Use(middlewares.BookingLimiter.Limit)

	router.Get("/week", bookingController.GetWeek)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/slots/toggle", bookingController.ToggleSlot)
	router.With(middlewares.Authenticate).Post("/", bookingController.CreateBooking)
	router.With(middlewares.Authenticate).Delete("/{booking_id}", bookingController.CancelBooking)
}
