package notifications

import (
	"fmt"

	config "github.com/SutariyaDeep123/RentRealm/configs"
	"github.com/SutariyaDeep123/RentRealm/models"
)

// InvoiceEmail renders the itemized invoice sent after a successful booking.
func InvoiceEmail(user models.User, booking models.Booking, bookingType string) string {
	title := "Property Booking"
	if bookingType == models.BookingTypeHotel {
		title = "Hotel Booking"
	}
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">
          <h2 style="color: #333;">%s Invoice</h2>
          <p><strong>Reference:</strong> %s</p>
          <p><strong>Name:</strong> %s</p>
          <p><strong>Email:</strong> %s</p>
          <p><strong>Check-in:</strong> %s</p>
          <p><strong>Check-out:</strong> %s</p>
          <p><strong>Guests:</strong> %d</p>
          <p><strong>Total Price:</strong> $%.2f</p>
          <p><strong>Status:</strong> %s</p>
          <hr />
          <p>Thank you for your booking!</p>
        </div>`,
		title,
		booking.Reference,
		user.Name,
		user.Email,
		booking.CheckIn.Format("January 2, 2006"),
		booking.CheckOut.Format("January 2, 2006"),
		booking.GuestCount,
		booking.TotalPrice,
		booking.Status,
	)
}

// RefundEmail notifies the payer that their charge was returned after a
// failed booking.
func RefundEmail(sessionID string) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
          <h2 style="color: #333;">Booking Refund Issued</h2>
          <p>Your payment has been refunded because the booking could not be completed.</p>
          <p>Payment reference: %s</p>
          <p>If the amount does not appear within a few business days, please contact support.</p>
        </div>`, sessionID)
}

// ResetPasswordEmail carries the one-time reset link.
func ResetPasswordEmail(token string) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 5px;">
          <h2 style="color: #333;">Password Reset Request</h2>
          <p>You've requested to reset your password. Click the button below to choose a new one.</p>
          <a href="%s/reset-password?token=%s" style="display: inline-block; padding: 10px 20px; background-color: #4CAF50; color: white; text-decoration: none; border-radius: 5px; margin-top: 15px;">Reset Password</a>
          <p style="margin-top: 20px; font-weight: bold; color: #ff0000;">This link will expire in 24 hours.</p>
          <p>If you didn't request a password reset, you can safely ignore this email.</p>
        </div>`, config.Config("FRONTEND_URL"), token)
}

// CheckInReminderEmail goes out the day before a stay begins.
func CheckInReminderEmail(user models.User, booking models.Booking) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
          <h2 style="color: #333;">Your stay starts tomorrow</h2>
          <p>Hi %s, this is a reminder that your booking %s checks in on %s.</p>
          <p>We look forward to hosting you!</p>
        </div>`, user.Name, booking.Reference, booking.CheckIn.Format("January 2, 2006"))
}
