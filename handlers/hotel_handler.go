package handlers

import (
	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/gofiber/fiber/v2"
)

type HotelRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description"`
	Street      string   `json:"street"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state"`
	Zip         string   `json:"zip"`
	Country     string   `json:"country" validate:"required"`
	MainImage   string   `json:"main_image"`
	Images      []string `json:"images"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	AmenityIDs  []string `json:"amenity_ids" validate:"omitempty,dive,uuid"`
}

func loadAmenities(ids []string) ([]*models.Amenity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var amenities []*models.Amenity
	if err := database.DB.Where("id IN ?", ids).Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

func CreateHotel(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req HotelRequest
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

	hotel := models.Hotel{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Street:      req.Street,
		City:        req.City,
		State:       req.State,
		Zip:         req.Zip,
		Country:     req.Country,
		MainImage:   req.MainImage,
		Images:      req.Images,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Amenities:   amenities,
	}
	if err := database.DB.Create(&hotel).Error; err != nil {
		return utils.Internal("Failed to create hotel")
	}

	return utils.Respond(c, fiber.StatusCreated, hotel)
}

func GetHotels(c *fiber.Ctx) error {
	query := database.DB.Preload("Amenities").Preload("Rooms")

	if city := c.Query("city"); city != "" {
		query = query.Where("city ILIKE ?", "%"+city+"%")
	}
	if country := c.Query("country"); country != "" {
		query = query.Where("country ILIKE ?", "%"+country+"%")
	}

	var hotels []models.Hotel
	if err := query.Order("created_at desc").Find(&hotels).Error; err != nil {
		return utils.Internal("Failed to fetch hotels")
	}

	return utils.Respond(c, fiber.StatusOK, hotels)
}

func GetHotel(c *fiber.Ctx) error {
	var hotel models.Hotel
	if err := database.DB.
		Preload("Amenities").
		Preload("Rooms.Amenities").
		Preload("Owner").
		First(&hotel, "id = ?", c.Params("hotelId")).Error; err != nil {
		return utils.NotFound("Hotel not found")
	}

	return utils.Respond(c, fiber.StatusOK, hotel)
}

func GetMyHotels(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var hotels []models.Hotel
	if err := database.DB.
		Preload("Rooms").
		Where("owner_id = ?", userID).
		Order("created_at desc").
		Find(&hotels).Error; err != nil {
		return utils.Internal("Failed to fetch hotels")
	}

	return utils.Respond(c, fiber.StatusOK, hotels)
}

func UpdateHotel(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var hotel models.Hotel
	if err := database.DB.First(&hotel, "id = ?", c.Params("hotelId")).Error; err != nil {
		return utils.NotFound("Hotel not found")
	}
	if hotel.OwnerID != userID {
		return utils.Forbidden("You do not own this hotel")
	}

	var req HotelRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	hotel.Name = req.Name
	hotel.Description = req.Description
	hotel.Street = req.Street
	hotel.City = req.City
	hotel.State = req.State
	hotel.Zip = req.Zip
	hotel.Country = req.Country
	if req.MainImage != "" {
		hotel.MainImage = req.MainImage
	}
	if req.Images != nil {
		hotel.Images = req.Images
	}
	hotel.Latitude = req.Latitude
	hotel.Longitude = req.Longitude

	if err := database.DB.Save(&hotel).Error; err != nil {
		return utils.Internal("Failed to update hotel")
	}

	if req.AmenityIDs != nil {
		amenities, err := loadAmenities(req.AmenityIDs)
		if err != nil {
			return utils.Internal("Failed to resolve amenities")
		}
		if err := database.DB.Model(&hotel).Association("Amenities").Replace(amenities); err != nil {
			return utils.Internal("Failed to update amenities")
		}
	}

	return utils.Respond(c, fiber.StatusOK, hotel)
}

func DeleteHotel(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var hotel models.Hotel
	if err := database.DB.First(&hotel, "id = ?", c.Params("hotelId")).Error; err != nil {
		return utils.NotFound("Hotel not found")
	}
	if hotel.OwnerID != userID {
		return utils.Forbidden("You do not own this hotel")
	}

	var activeBookings int64
	database.DB.Model(&models.Booking{}).
		Where("hotel_id = ? AND status = ?", hotel.ID, models.BookingStatusConfirmed).
		Count(&activeBookings)
	if activeBookings > 0 {
		return utils.BadRequest("Cannot delete a hotel with active bookings")
	}

	if err := database.DB.Where("hotel_id = ?", hotel.ID).Delete(&models.Room{}).Error; err != nil {
		return utils.Internal("Failed to delete hotel rooms")
	}
	if err := database.DB.Delete(&hotel).Error; err != nil {
		return utils.Internal("Failed to delete hotel")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"message": "Hotel deleted successfully"})
}
