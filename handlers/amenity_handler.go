package handlers

import (
	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/gofiber/fiber/v2"
)

type AmenityRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}

func CreateAmenity(c *fiber.Ctx) error {
	var req AmenityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	amenity := models.Amenity{
		Name:        req.Name,
		Icon:        req.Icon,
		Description: req.Description,
	}
	if err := database.DB.Create(&amenity).Error; err != nil {
		return utils.BadRequest("Amenity already exists or could not be created")
	}

	return utils.Respond(c, fiber.StatusCreated, amenity)
}

func GetAmenities(c *fiber.Ctx) error {
	var amenities []models.Amenity
	if err := database.DB.Order("name asc").Find(&amenities).Error; err != nil {
		return utils.Internal("Failed to fetch amenities")
	}

	return utils.Respond(c, fiber.StatusOK, amenities)
}

func UpdateAmenity(c *fiber.Ctx) error {
	var amenity models.Amenity
	if err := database.DB.First(&amenity, "id = ?", c.Params("amenityId")).Error; err != nil {
		return utils.NotFound("Amenity not found")
	}

	var req AmenityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	amenity.Name = req.Name
	amenity.Icon = req.Icon
	amenity.Description = req.Description
	if err := database.DB.Save(&amenity).Error; err != nil {
		return utils.Internal("Failed to update amenity")
	}

	return utils.Respond(c, fiber.StatusOK, amenity)
}

func DeleteAmenity(c *fiber.Ctx) error {
	var amenity models.Amenity
	if err := database.DB.First(&amenity, "id = ?", c.Params("amenityId")).Error; err != nil {
		return utils.NotFound("Amenity not found")
	}

	if err := database.DB.Delete(&amenity).Error; err != nil {
		return utils.Internal("Failed to delete amenity")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"message": "Amenity deleted successfully"})
}
