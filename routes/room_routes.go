package routes

import (
	"github.com/SutariyaDeep123/RentRealm/handlers"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/gofiber/fiber/v2"
)

func RoomRoutes(app *fiber.App) {
	room := app.Group("/room")

	room.Get("/hotel/:hotelId", handlers.GetRoomsByHotel)
	room.Get("/:roomId", handlers.GetRoom)
	room.Post("/:hotelId", middleware.Protected(), handlers.CreateRoom)
	room.Put("/:roomId", middleware.Protected(), handlers.UpdateRoom)
	room.Delete("/:roomId", middleware.Protected(), handlers.DeleteRoom)
}
