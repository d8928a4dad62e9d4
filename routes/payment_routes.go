package routes

import (
	"github.com/SutariyaDeep123/RentRealm/handlers"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	payment := app.Group("/payment")

	payment.Post("/create-checkout-session", middleware.Protected(), handlers.CreateCheckoutSession)
	payment.Get("/my-payments", middleware.Protected(), handlers.ListMyPayments)

	// The success/cancel pages call these before the user session is
	// necessarily re-established, so they stay public.
	payment.Get("/session/:id", handlers.GetCheckoutSession)
	payment.Post("/refund", handlers.RefundPayment)
}
