package main

import (
	"log"
	"time"

	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/jobs"
	"github.com/SutariyaDeep123/RentRealm/notifications"
	"github.com/SutariyaDeep123/RentRealm/routes"
	"github.com/SutariyaDeep123/RentRealm/services"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/SutariyaDeep123/RentRealm/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedAdmin()
	notifications.InitEmailService()

	go services.FetchRates()

	c := cron.New()
	c.AddFunc("0 * * * *", jobs.SendCheckInReminders)
	c.AddFunc("0 */6 * * *", func() {
		if _, err := services.FetchRates(); err != nil {
			log.Printf("🔥 Failed to refresh exchange rates: %v", err)
		}
	})
	go c.Start()
	log.Println("✅ Cron jobs scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "RentRealm",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler:      utils.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return utils.Respond(c, fiber.StatusOK, fiber.Map{
			"message": "Welcome to the RentRealm API",
		})
	})

	routes.AuthRoutes(app)
	routes.HotelRoutes(app)
	routes.RoomRoutes(app)
	routes.ListingRoutes(app)
	routes.AmenityRoutes(app)
	routes.BookingRoutes(app)
	routes.PaymentRoutes(app)
	routes.AdminRoutes(app)
	routes.UploadRoutes(app)
	routes.NotificationRoutes(app)

	go websocket.RunHub()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Println("✅ Server is running on port 8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
