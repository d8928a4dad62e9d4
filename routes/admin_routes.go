package routes

import (
	"github.com/SutariyaDeep123/RentRealm/handlers"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/users", handlers.GetAllUsers)
	admin.Delete("/users/:userId", handlers.AdminDeleteUser)
	admin.Get("/dashboard/users", handlers.GetUserDashboard)
	admin.Get("/dashboard/bookings", handlers.GetBookingDashboard)
}
