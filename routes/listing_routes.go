package routes

import (
	"github.com/SutariyaDeep123/RentRealm/handlers"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/gofiber/fiber/v2"
)

func ListingRoutes(app *fiber.App) {
	listing := app.Group("/listing")

	listing.Get("/", handlers.GetListings)
	listing.Get("/my-listings", middleware.Protected(), handlers.GetMyListings)
	listing.Get("/:listingId", handlers.GetListing)
	listing.Post("/", middleware.Protected(), handlers.CreateListing)
	listing.Put("/:listingId", middleware.Protected(), handlers.UpdateListing)
	listing.Delete("/:listingId", middleware.Protected(), handlers.DeleteListing)
}
