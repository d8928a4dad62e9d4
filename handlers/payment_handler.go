package handlers

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	config "github.com/SutariyaDeep123/RentRealm/configs"
	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/notifications"
	"github.com/SutariyaDeep123/RentRealm/payments"
	"github.com/SutariyaDeep123/RentRealm/services"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckoutMetadata struct {
	Type            string `json:"type" validate:"required,oneof=hotel listing"`
	PropertyID      string `json:"propertyId" validate:"required"`
	RoomID          string `json:"roomId"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	GuestCount      int    `json:"guestCount"`
	SpecialRequests string `json:"specialRequests"`
	ListingType     string `json:"listingType"`
}

type CreateCheckoutSessionRequest struct {
	Amount   int64            `json:"amount" validate:"required,min=1"` // minor units, priced in USD
	Currency string           `json:"currency" validate:"required,len=3"`
	Metadata CheckoutMetadata `json:"metadata" validate:"required"`
}

// CreateCheckoutSession opens a hosted payment session at the provider. All
// booking parameters travel as session metadata; no pending-booking row is
// written. A Payment row keyed by the session id is recorded so the refund
// path stays idempotent.
func CreateCheckoutSession(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return utils.NotFound("User not found")
	}

	// Prices are stored in USD; a non-USD checkout charges the converted
	// amount in the requested currency.
	amount := req.Amount
	currency := strings.ToUpper(req.Currency)
	if currency != "USD" {
		converted, err := services.ConvertFromUSD(float64(req.Amount), currency)
		if err != nil {
			return utils.BadRequest("Unsupported currency: " + req.Currency)
		}
		amount = int64(math.Round(converted))
	}

	mode := "payment"
	quantity := int64(1)
	if req.Metadata.ListingType == models.ListingTypeRent {
		mode = "subscription"
		checkIn, errIn := parseBookingDate(req.Metadata.CheckIn)
		checkOut, errOut := parseBookingDate(req.Metadata.CheckOut)
		if errIn != nil || errOut != nil {
			return utils.BadRequest("Invalid check-in or check-out date")
		}
		months := int64(checkOut.Sub(checkIn).Hours() / 24 / 30)
		if months > 0 {
			quantity = months
		}
	}

	productName := "Property Booking"
	if req.Metadata.Type == models.BookingTypeHotel {
		productName = "Hotel Booking"
	}

	paymentType := "one_time"
	if mode == "subscription" {
		paymentType = "recurring"
	}

	frontendURL := config.Config("FRONTEND_URL")
	session, err := payments.CreateCheckoutSession(payments.CheckoutSessionParams{
		Mode:          mode,
		Amount:        amount,
		Currency:      currency,
		Quantity:      quantity,
		ProductName:   productName,
		CustomerEmail: user.Email,
		Metadata: map[string]string{
			"userId":          userID.String(),
			"type":            req.Metadata.Type,
			"propertyId":      req.Metadata.PropertyID,
			"roomId":          req.Metadata.RoomID,
			"checkIn":         req.Metadata.CheckIn,
			"checkOut":        req.Metadata.CheckOut,
			"guestCount":      strconv.Itoa(req.Metadata.GuestCount),
			"specialRequests": req.Metadata.SpecialRequests,
			"paymentType":     paymentType,
		},
		SuccessURL: fmt.Sprintf("%s/payment/success?session_id={CHECKOUT_SESSION_ID}", frontendURL),
		CancelURL:  fmt.Sprintf("%s/payment/cancel", frontendURL),
	})
	if err != nil {
		log.Printf("🔥 Failed to create checkout session: %v", err)
		return utils.UpstreamError("Payment session could not be created, please try again.")
	}

	payment := models.Payment{
		UserID:    userID,
		SessionID: session.ID,
		Amount:    amount,
		Currency:  currency,
		Status:    "pending",
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		log.Printf("🔥 Failed to record payment for session %s: %v", session.ID, err)
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{"sessionId": session.ID})
}

// GetCheckoutSession returns the raw provider session, metadata included.
// The success page reads the booking parameters back from it.
func GetCheckoutSession(c *fiber.Ctx) error {
	session, err := payments.RetrieveCheckoutSession(c.Params("id"))
	if err != nil {
		log.Printf("🔥 Failed to retrieve checkout session %s: %v", c.Params("id"), err)
		return utils.UpstreamError("Failed to retrieve checkout session")
	}
	return utils.Respond(c, fiber.StatusOK, session)
}

type RefundRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// recordedRefund returns the refund already issued for this payment, or nil
// when no refund has been recorded yet.
func recordedRefund(payment models.Payment) *payments.Refund {
	if payment.RefundStatus == nil {
		return nil
	}
	return &payments.Refund{
		ID:     derefString(payment.RefundID),
		Status: *payment.RefundStatus,
	}
}

// RefundPayment is the compensation path: payment captured but booking
// creation failed. The refund is issued at most once per session; a repeat
// call returns the recorded refund instead of charging the provider again.
// The lookup, provider call and save run under a row lock on the Payment so
// two concurrent refund requests for the same session serialize. A refund
// failure is surfaced distinctly because the user's money may not have been
// returned.
func RefundPayment(c *fiber.Ctx) error {
	var req RefundRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	var (
		priorRefund   *payments.Refund
		refund        *payments.Refund
		customerEmail string
	)
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		paymentErr := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_id = ?", req.SessionID).
			First(&payment).Error
		if paymentErr != nil && paymentErr != gorm.ErrRecordNotFound {
			return utils.Internal("Failed to look up payment")
		}
		if paymentErr == nil {
			if priorRefund = recordedRefund(payment); priorRefund != nil {
				return nil
			}
		}

		session, err := payments.RetrieveCheckoutSession(req.SessionID)
		if err != nil {
			log.Printf("🔥 Failed to retrieve session %s for refund: %v", req.SessionID, err)
			return utils.UpstreamError("Failed to retrieve checkout session")
		}
		if session.PaymentIntent == "" {
			return utils.BadRequest("No captured payment found for this session")
		}
		customerEmail = session.CustomerEmail

		refund, err = payments.CreateRefund(session.PaymentIntent)
		if err != nil {
			log.Printf("🔥 CRITICAL: refund failed for session %s: %v", req.SessionID, err)
			return utils.UpstreamError("Refund could not be issued. Your payment may not have been returned; please contact support.")
		}

		if paymentErr == nil {
			refundStatus := refund.Status
			payment.Status = "refunded"
			payment.RefundID = &refund.ID
			payment.RefundStatus = &refundStatus
			payment.PaymentIntentID = &session.PaymentIntent
			if err := tx.Save(&payment).Error; err != nil {
				log.Printf("🔥 Failed to record refund for session %s: %v", req.SessionID, err)
			}
		} else {
			log.Printf("No payment record for session %s, refund issued without local state", req.SessionID)
		}
		return nil
	})
	if txErr != nil {
		if apiErr, ok := txErr.(*utils.ApiError); ok {
			return apiErr
		}
		return utils.Internal("Failed to process refund")
	}

	if priorRefund != nil {
		return utils.Respond(c, fiber.StatusOK, fiber.Map{
			"message": "Refund already issued",
			"refund":  priorRefund,
		})
	}

	var user models.User
	if err := database.DB.Where("email = ?", customerEmail).First(&user).Error; err == nil {
		go notifications.SendEmail(user.Name, user.Email, "Booking Refund Issued", notifications.RefundEmail(req.SessionID))
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{
		"message": "Refund issued",
		"refund":  refund,
	})
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListMyPayments supports the account billing view.
func ListMyPayments(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var userPayments []models.Payment
	if err := database.DB.
		Preload("Booking").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&userPayments).Error; err != nil {
		return utils.Internal("Failed to fetch payments")
	}

	return utils.Respond(c, fiber.StatusOK, userPayments)
}
