package routes

import (
	"github.com/SutariyaDeep123/RentRealm/handlers"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(app *fiber.App) {
	upload := app.Group("/upload", middleware.Protected())

	upload.Get("/signature", handlers.GenerateUploadSignature)
}
