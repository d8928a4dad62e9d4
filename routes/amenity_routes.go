package routes

import (
	"github.com/SutariyaDeep123/RentRealm/handlers"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/gofiber/fiber/v2"
)

func AmenityRoutes(app *fiber.App) {
	amenity := app.Group("/amenity")

	amenity.Get("/", handlers.GetAmenities)
	amenity.Post("/", middleware.Protected(), middleware.AdminRequired(), handlers.CreateAmenity)
	amenity.Put("/:amenityId", middleware.Protected(), middleware.AdminRequired(), handlers.UpdateAmenity)
	amenity.Delete("/:amenityId", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteAmenity)
}
