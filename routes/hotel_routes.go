package routes

import (
	"github.com/SutariyaDeep123/RentRealm/handlers"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/gofiber/fiber/v2"
)

func HotelRoutes(app *fiber.App) {
	hotel := app.Group("/hotel")

	hotel.Get("/", handlers.GetHotels)
	hotel.Get("/my-hotels", middleware.Protected(), handlers.GetMyHotels)
	hotel.Get("/:hotelId", handlers.GetHotel)
	hotel.Post("/", middleware.Protected(), handlers.CreateHotel)
	hotel.Put("/:hotelId", middleware.Protected(), handlers.UpdateHotel)
	hotel.Delete("/:hotelId", middleware.Protected(), handlers.DeleteHotel)
}
