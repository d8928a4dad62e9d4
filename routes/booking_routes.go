package routes

import (
	"github.com/SutariyaDeep123/RentRealm/handlers"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	booking := app.Group("/booking", middleware.Protected())

	booking.Get("/check-availability", handlers.CheckAvailability)
	booking.Post("/hotel", handlers.BookHotelRoom)
	booking.Post("/listing", handlers.BookListing)
	booking.Get("/my-bookings", handlers.GetMyBookings)
	booking.Get("/property-bookings", handlers.GetPropertyBookings)
	booking.Patch("/:bookingId/status", handlers.UpdateBookingStatus)
	booking.Get("/:bookingId/invoice", handlers.DownloadInvoice)
}
