package jobs

import (
	"log"
	"time"

	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/notifications"
)

// SendCheckInReminders emails guests whose stay starts roughly 24 hours from
// now. The job runs hourly, so the window is one hour wide to avoid sending
// the same reminder twice.
func SendCheckInReminders() {
	log.Println("Running job: SendCheckInReminders...")

	now := time.Now()
	lowerBound := now.Add(24 * time.Hour)
	upperBound := now.Add(25 * time.Hour)

	var upcomingBookings []models.Booking

	err := database.DB.
		Preload("User").
		Preload("Hotel").
		Preload("Listing").
		Where("status = ? AND check_in BETWEEN ? AND ?", models.BookingStatusConfirmed, lowerBound, upperBound).
		Find(&upcomingBookings).Error

	if err != nil {
		log.Printf("🔥 Error checking for upcoming stays: %v", err)
		return
	}

	if len(upcomingBookings) == 0 {
		return
	}

	for _, booking := range upcomingBookings {
		log.Printf("Sending check-in reminder for booking %s", booking.Reference)

		body := notifications.CheckInReminderEmail(booking.User, booking)
		go notifications.SendEmail(booking.User.Name, booking.User.Email, "Reminder: your check-in is tomorrow", body)
	}
}
