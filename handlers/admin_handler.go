package handlers

import (
	"strconv"
	"time"

	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/gofiber/fiber/v2"
)

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return utils.Internal("Failed to fetch users")
	}

	return utils.Respond(c, fiber.StatusOK, users)
}

func AdminDeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("userId")).Error; err != nil {
		return utils.NotFound("User not found")
	}

	if user.Role == "admin" {
		return utils.Forbidden("Cannot delete an admin account")
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		return utils.Internal("Failed to delete user")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"message": "User deleted successfully"})
}

type monthlyCount struct {
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

func monthlyCounts(table string, year int) ([]monthlyCount, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	rows := make([]struct {
		Month int
		Count int64
	}, 0, 12)
	err := database.DB.
		Table(table).
		Select("EXTRACT(MONTH FROM created_at)::int AS month, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("month").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]monthlyCount, 12)
	for i := range result {
		result[i] = monthlyCount{Month: i + 1}
	}
	for _, row := range rows {
		if row.Month >= 1 && row.Month <= 12 {
			result[row.Month-1].Count = row.Count
		}
	}
	return result, nil
}

// GetUserDashboard returns per-month registration counts for a year.
func GetUserDashboard(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		year = time.Now().Year()
	}

	registrations, err := monthlyCounts("users", year)
	if err != nil {
		return utils.Internal("Failed to aggregate registrations")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{
		"users": fiber.Map{"year": year, "registrations": registrations},
	})
}

// GetBookingDashboard returns per-month booking counts and revenue.
func GetBookingDashboard(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		year = time.Now().Year()
	}

	bookings, err := monthlyCounts("bookings", year)
	if err != nil {
		return utils.Internal("Failed to aggregate bookings")
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var revenue float64
	if err := database.DB.
		Model(&models.Booking{}).
		Where("created_at >= ? AND created_at < ? AND status <> ?", start, end, models.BookingStatusCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&revenue).Error; err != nil {
		return utils.Internal("Failed to aggregate revenue")
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{
		"bookings": fiber.Map{"year": year, "counts": bookings, "revenue": revenue},
	})
}
