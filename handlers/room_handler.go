package handlers

import (
	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/gofiber/fiber/v2"
)

type RoomRequest struct {
	Type        string   `json:"type" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Capacity    int      `json:"capacity" validate:"omitempty,min=1"`
	MainImage   string   `json:"main_image"`
	Images      []string `json:"images"`
	AmenityIDs  []string `json:"amenity_ids" validate:"omitempty,dive,uuid"`
}

func CreateRoom(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var hotel models.Hotel
	if err := database.DB.First(&hotel, "id = ?", c.Params("hotelId")).Error; err != nil {
		return utils.NotFound("Hotel not found")
	}
	if hotel.OwnerID != userID {
		return utils.Forbidden("You do not own this hotel")
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	amenities, err := loadAmenities(req.AmenityIDs)
	if err != nil {
		return utils.Internal("Failed to resolve amenities")
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = 2
	}

	room := models.Room{
		HotelID:     hotel.ID,
		Type:        req.Type,
		Description: req.Description,
		Price:       req.Price,
		Capacity:    capacity,
		MainImage:   req.MainImage,
		Images:      req.Images,
		Amenities:   amenities,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return utils.Internal("Failed to create room")
	}

	return utils.Respond(c, fiber.StatusCreated, room)
}

func GetRoomsByHotel(c *fiber.Ctx) error {
	var rooms []models.Room
	if err := database.DB.
		Preload("Amenities").
		Where("hotel_id = ?", c.Params("hotelId")).
		Order("price asc").
		Find(&rooms).Error; err != nil {
		return utils.Internal("Failed to fetch rooms")
	}

	return utils.Respond(c, fiber.StatusOK, rooms)
}

func GetRoom(c *fiber.Ctx) error {
	var room models.Room
	if err := database.DB.
		Preload("Amenities").
		Preload("Hotel").
		First(&room, "id = ?", c.Params("roomId")).Error; err != nil {
		return utils.NotFound("Room not found")
	}

	return utils.Respond(c, fiber.StatusOK, room)
}

func UpdateRoom(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var room models.Room
	if err := database.DB.Preload("Hotel").First(&room, "id = ?", c.Params("roomId")).Error; err != nil {
		return utils.NotFound("Room not found")
	}
	if room.Hotel.OwnerID != userID {
		return utils.Forbidden("You do not own this room's hotel")
	}

	var req RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	room.Type = req.Type
	room.Description = req.Description
	room.Price = req.Price
	if req.Capacity > 0 {
		room.Capacity = req.Capacity
	}
	if req.MainImage != "" {
		room.MainImage = req.MainImage
	}
	if req.Images != nil {
		room.Images = req.Images
	}

	if err := database.DB.Save(&room).Error; err != nil {
		return utils.Internal("Failed to update room")
	}

	if req.AmenityIDs != nil {
		amenities, err := loadAmenities(req.AmenityIDs)
		if err != nil {
			return utils.Internal("Failed to resolve amenities")
		}
		if err := database.DB.Model(&room).Association("Amenities").Replace(amenities); err != nil {
			return utils.Internal("Failed to update amenities")
		}
	}

	return utils.Respond(c, fiber.StatusOK, room)
}

func DeleteRoom(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var room models.Room
	if err := database.DB.Preload("Hotel").First(&room, "id = ?", c.Params("roomId")).Error; err != nil {
		return utils.NotFound("Room not found")
	}
	if room.Hotel.OwnerID != userID {
		return utils.Forbidden("You do not own this room's hotel")
	}

	var activeBookings int64
	database.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status = ?", room.ID, models.BookingStatusConfirmed).
		Count(&activeBookings)
	if activeBookings > 0 {
		return utils.BadRequest("Cannot delete a room with active bookings")
	}

	if err := database.DB.Delete(&room).Error; err != nil {
		return utils.Internal("Failed to delete room")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"message": "Room deleted successfully"})
}
