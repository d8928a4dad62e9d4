package handlers

import (
	"strconv"
	"time"

	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/gofiber/fiber/v2"
)

type ListingRequest struct {
	Name          string   `json:"name" validate:"required,min=2"`
	Type          string   `json:"type" validate:"required,oneof=sale rent temporary_rent"`
	PropertyType  string   `json:"property_type" validate:"required,oneof=house apartment condo"`
	Description   string   `json:"description"`
	Street        string   `json:"street"`
	City          string   `json:"city" validate:"required"`
	State         string   `json:"state"`
	Zip           string   `json:"zip"`
	Country       string   `json:"country" validate:"required"`
	Bedrooms      int      `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms     int      `json:"bathrooms" validate:"omitempty,min=0"`
	Area          float64  `json:"area" validate:"omitempty,gt=0"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	MainImage     string   `json:"main_image"`
	Images        []string `json:"images"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	AvailableFrom *string  `json:"available_from"`
	AvailableTo   *string  `json:"available_to"`
	AmenityIDs    []string `json:"amenity_ids" validate:"omitempty,dive,uuid"`
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseBookingDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func CreateListing(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	availableFrom, err := parseOptionalDate(req.AvailableFrom)
	if err != nil {
		return utils.BadRequest("Invalid available_from date")
	}
	availableTo, err := parseOptionalDate(req.AvailableTo)
	if err != nil {
		return utils.BadRequest("Invalid available_to date")
	}

	amenities, err := loadAmenities(req.AmenityIDs)
	if err != nil {
		return utils.Internal("Failed to resolve amenities")
	}

	listing := models.Listing{
		OwnerID:       userID,
		Name:          req.Name,
		Type:          req.Type,
		PropertyType:  req.PropertyType,
		Description:   req.Description,
		Street:        req.Street,
		City:          req.City,
		State:         req.State,
		Zip:           req.Zip,
		Country:       req.Country,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Area:          req.Area,
		Price:         req.Price,
		IsAvailable:   true,
		MainImage:     req.MainImage,
		Images:        req.Images,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		AvailableFrom: availableFrom,
		AvailableTo:   availableTo,
		Amenities:     amenities,
	}
	if err := database.DB.Create(&listing).Error; err != nil {
		return utils.Internal("Failed to create listing")
	}

	return utils.Respond(c, fiber.StatusCreated, listing)
}

// GetListings is the public browse endpoint with the sidebar filters.
func GetListings(c *fiber.Ctx) error {
	query := database.DB.Preload("Amenities")

	if listingType := c.Query("type"); listingType != "" {
		query = query.Where("type = ?", listingType)
	}
	if propertyType := c.Query("property_type"); propertyType != "" {
		query = query.Where("property_type = ?", propertyType)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city ILIKE ?", "%"+city+"%")
	}
	if minPrice, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		query = query.Where("price <= ?", maxPrice)
	}
	if bedrooms, err := strconv.Atoi(c.Query("bedrooms")); err == nil {
		query = query.Where("bedrooms >= ?", bedrooms)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = true")
	}
	if c.Query("include_sold") != "true" {
		query = query.Where("is_available = true")
	}

	var listings []models.Listing
	if err := query.Order("created_at desc").Find(&listings).Error; err != nil {
		return utils.Internal("Failed to fetch listings")
	}

	return utils.Respond(c, fiber.StatusOK, listings)
}

func GetListing(c *fiber.Ctx) error {
	var listing models.Listing
	if err := database.DB.
		Preload("Amenities").
		Preload("Owner").
		First(&listing, "id = ?", c.Params("listingId")).Error; err != nil {
		return utils.NotFound("Listing not found")
	}

	return utils.Respond(c, fiber.StatusOK, listing)
}

func GetMyListings(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var listings []models.Listing
	if err := database.DB.
		Where("owner_id = ?", userID).
		Order("created_at desc").
		Find(&listings).Error; err != nil {
		return utils.Internal("Failed to fetch listings")
	}

	return utils.Respond(c, fiber.StatusOK, listings)
}

func UpdateListing(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", c.Params("listingId")).Error; err != nil {
		return utils.NotFound("Listing not found")
	}
	if listing.OwnerID != userID {
		return utils.Forbidden("You do not own this listing")
	}

	var req ListingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	availableFrom, err := parseOptionalDate(req.AvailableFrom)
	if err != nil {
		return utils.BadRequest("Invalid available_from date")
	}
	availableTo, err := parseOptionalDate(req.AvailableTo)
	if err != nil {
		return utils.BadRequest("Invalid available_to date")
	}

	listing.Name = req.Name
	listing.Type = req.Type
	listing.PropertyType = req.PropertyType
	listing.Description = req.Description
	listing.Street = req.Street
	listing.City = req.City
	listing.State = req.State
	listing.Zip = req.Zip
	listing.Country = req.Country
	listing.Bedrooms = req.Bedrooms
	listing.Bathrooms = req.Bathrooms
	listing.Area = req.Area
	listing.Price = req.Price
	if req.MainImage != "" {
		listing.MainImage = req.MainImage
	}
	if req.Images != nil {
		listing.Images = req.Images
	}
	listing.Latitude = req.Latitude
	listing.Longitude = req.Longitude
	if availableFrom != nil {
		listing.AvailableFrom = availableFrom
	}
	if availableTo != nil {
		listing.AvailableTo = availableTo
	}

	if err := database.DB.Save(&listing).Error; err != nil {
		return utils.Internal("Failed to update listing")
	}

	if req.AmenityIDs != nil {
		amenities, err := loadAmenities(req.AmenityIDs)
		if err != nil {
			return utils.Internal("Failed to resolve amenities")
		}
		if err := database.DB.Model(&listing).Association("Amenities").Replace(amenities); err != nil {
			return utils.Internal("Failed to update amenities")
		}
	}

	return utils.Respond(c, fiber.StatusOK, listing)
}

func DeleteListing(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", c.Params("listingId")).Error; err != nil {
		return utils.NotFound("Listing not found")
	}
	if listing.OwnerID != userID {
		return utils.Forbidden("You do not own this listing")
	}

	var activeBookings int64
	database.DB.Model(&models.Booking{}).
		Where("listing_id = ? AND status = ?", listing.ID, models.BookingStatusConfirmed).
		Count(&activeBookings)
	if activeBookings > 0 {
		return utils.BadRequest("Cannot delete a listing with active bookings")
	}

	if err := database.DB.Delete(&listing).Error; err != nil {
		return utils.Internal("Failed to delete listing")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"message": "Listing deleted successfully"})
}
