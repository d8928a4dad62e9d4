package handlers

import (
	"log"
	"time"

	"github.com/SutariyaDeep123/RentRealm/database"
	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/notifications"
	"github.com/SutariyaDeep123/RentRealm/services"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/SutariyaDeep123/RentRealm/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HotelBookingRequest struct {
	HotelID         string `json:"hotelId" validate:"required,uuid"`
	RoomID          string `json:"roomId" validate:"required,uuid"`
	CheckIn         string `json:"checkIn" validate:"required"`
	CheckOut        string `json:"checkOut" validate:"required"`
	GuestCount      int    `json:"guestCount" validate:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

type ListingBookingRequest struct {
	ListingID       string `json:"listingId" validate:"required,uuid"`
	CheckIn         string `json:"checkIn"`
	CheckOut        string `json:"checkOut"`
	GuestCount      int    `json:"guestCount" validate:"omitempty,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

func parseBookingDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// BookHotelRoom creates a confirmed booking for a hotel room. The overlap
// check and the insert run in one transaction holding a row lock on the
// room, so two concurrent requests for the same room serialize.
func BookHotelRoom(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req HotelBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	checkIn, errIn := parseBookingDate(req.CheckIn)
	checkOut, errOut := parseBookingDate(req.CheckOut)
	if errIn != nil || errOut != nil {
		return utils.BadRequest("Invalid check-in or check-out date")
	}
	if !checkOut.After(checkIn) {
		return utils.BadRequest("Check-out date must be after check-in date")
	}

	hotelID, _ := uuid.Parse(req.HotelID)
	roomID, _ := uuid.Parse(req.RoomID)

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, "id = ?", roomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("Room not found")
			}
			return err
		}

		// The room's own hotel reference is authoritative; the request's
		// hotelId must match it.
		if room.HotelID != hotelID {
			return utils.BadRequest("Room does not belong to specified hotel")
		}

		availability, err := services.CheckRoomAvailability(tx, roomID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if !availability.Available {
			return utils.BadRequest(availability.Message)
		}

		_, totalPrice, err := services.CalculateStayPrice(models.ListingTypeTemporaryRent, checkIn, checkOut, room.Price)
		if err != nil {
			return utils.BadRequest(err.Error())
		}

		reference, err := utils.GenerateBookingReference(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			Reference:       reference,
			UserID:          userID,
			BookingType:     models.BookingTypeHotel,
			RoomID:          &roomID,
			HotelID:         &hotelID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			GuestCount:      req.GuestCount,
			SpecialRequests: req.SpecialRequests,
			TotalPrice:      totalPrice,
			Status:          models.BookingStatusConfirmed,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if apiErr, ok := err.(*utils.ApiError); ok {
			return apiErr
		}
		return utils.Internal("Failed to create booking")
	}

	if err := database.DB.Preload("Hotel").Preload("Room").Preload("User").First(&booking, "id = ?", booking.ID).Error; err != nil {
		log.Printf("⚠️ Failed to reload booking %s with associations: %v", booking.ID, err)
	}

	go finalizeBooking(booking)

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"message": "Booking confirmed successfully",
		"booking": booking,
	})
}

// BookListing creates a confirmed booking for a listing. Sale listings are a
// single irreversible purchase with no interval semantics; rent and
// temporary_rent listings follow the same locked check-then-insert as
// hotel rooms.
func BookListing(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req ListingBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	listingID, _ := uuid.Parse(req.ListingID)

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&listing, "id = ?", listingID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return utils.NotFound("Listing not found")
			}
			return err
		}

		if listing.Type == models.ListingTypeSale {
			if !listing.IsAvailable {
				return utils.BadRequest("This property has already been sold")
			}

			reference, err := utils.GenerateBookingReference(tx)
			if err != nil {
				return err
			}

			now := time.Now()
			booking = models.Booking{
				Reference:       reference,
				UserID:          userID,
				BookingType:     models.BookingTypeListing,
				ListingID:       &listingID,
				CheckIn:         now,
				CheckOut:        now,
				GuestCount:      1,
				SpecialRequests: req.SpecialRequests,
				TotalPrice:      listing.Price,
				Status:          models.BookingStatusConfirmed,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return err
			}

			// Sold for good.
			listing.IsAvailable = false
			return tx.Save(&listing).Error
		}

		checkIn, errIn := parseBookingDate(req.CheckIn)
		checkOut, errOut := parseBookingDate(req.CheckOut)
		if errIn != nil || errOut != nil {
			return utils.BadRequest("Invalid check-in or check-out date")
		}
		if !checkOut.After(checkIn) {
			return utils.BadRequest("Check-out date must be after check-in date")
		}
		if req.GuestCount < 1 {
			return utils.BadRequest("Guest count must be at least 1")
		}

		availability, err := services.CheckListingAvailability(tx, &listing, checkIn, checkOut)
		if err != nil {
			return err
		}
		if !availability.Available {
			return utils.BadRequest(availability.Message)
		}

		_, totalPrice, err := services.CalculateStayPrice(listing.Type, checkIn, checkOut, listing.Price)
		if err != nil {
			return utils.BadRequest(err.Error())
		}

		reference, err := utils.GenerateBookingReference(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			Reference:       reference,
			UserID:          userID,
			BookingType:     models.BookingTypeListing,
			ListingID:       &listingID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			GuestCount:      req.GuestCount,
			SpecialRequests: req.SpecialRequests,
			TotalPrice:      totalPrice,
			Status:          models.BookingStatusConfirmed,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if apiErr, ok := err.(*utils.ApiError); ok {
			return apiErr
		}
		return utils.Internal("Failed to create booking")
	}

	if err := database.DB.Preload("Listing").Preload("User").First(&booking, "id = ?", booking.ID).Error; err != nil {
		log.Printf("⚠️ Failed to reload booking %s with associations: %v", booking.ID, err)
	}

	go finalizeBooking(booking)

	message := "Booking confirmed successfully"
	if booking.Listing != nil && booking.Listing.Type == models.ListingTypeSale {
		message = "Purchase confirmed successfully"
	}
	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"message": message,
		"booking": booking,
	})
}

// finalizeBooking handles the post-commit side effects: invoice email, PDF
// archival and the owner's live notification.
func finalizeBooking(booking models.Booking) {
	notifications.SendEmail(booking.User.Name, booking.User.Email, "Your invoice", notifications.InvoiceEmail(booking.User, booking, booking.BookingType))

	go services.ArchiveInvoice(booking, booking.User)

	ownerID, propertyName := bookingOwner(booking)
	if ownerID == uuid.Nil {
		return
	}
	websocket.Notify <- &websocket.BookingNotification{
		OwnerID:    ownerID,
		Event:      "booking.created",
		BookingID:  booking.ID,
		Reference:  booking.Reference,
		Property:   propertyName,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		TotalPrice: booking.TotalPrice,
		Status:     booking.Status,
	}
}

func bookingOwner(booking models.Booking) (uuid.UUID, string) {
	switch booking.BookingType {
	case models.BookingTypeHotel:
		if booking.HotelID == nil {
			return uuid.Nil, ""
		}
		var hotel models.Hotel
		if err := database.DB.First(&hotel, "id = ?", booking.HotelID).Error; err != nil {
			return uuid.Nil, ""
		}
		return hotel.OwnerID, hotel.Name
	case models.BookingTypeListing:
		if booking.ListingID == nil {
			return uuid.Nil, ""
		}
		var listing models.Listing
		if err := database.DB.First(&listing, "id = ?", booking.ListingID).Error; err != nil {
			return uuid.Nil, ""
		}
		return listing.OwnerID, listing.Name
	}
	return uuid.Nil, ""
}

// CheckAvailability is the non-binding preview the booking page polls while
// the user picks dates. The authoritative check happens again at creation.
func CheckAvailability(c *fiber.Ctx) error {
	propertyType := c.Query("type")
	propertyID := c.Query("propertyId")
	roomID := c.Query("roomId")
	checkInRaw := c.Query("checkIn")
	checkOutRaw := c.Query("checkOut")

	if checkInRaw == "" || checkOutRaw == "" {
		return utils.BadRequest("Please provide both check-in and check-out dates")
	}

	checkIn, errIn := parseBookingDate(checkInRaw)
	checkOut, errOut := parseBookingDate(checkOutRaw)
	if errIn != nil || errOut != nil {
		return utils.BadRequest("Invalid check-in or check-out date")
	}
	if !checkOut.After(checkIn) {
		return utils.BadRequest("Check-out date must be after check-in date")
	}

	if propertyType == models.BookingTypeHotel {
		id, err := uuid.Parse(roomID)
		if err != nil {
			return utils.BadRequest("Invalid room id")
		}

		var room models.Room
		if err := database.DB.First(&room, "id = ?", id).Error; err != nil {
			return utils.NotFound("Room not found")
		}

		result, err := services.CheckRoomAvailability(database.DB, id, checkIn, checkOut)
		if err != nil {
			return utils.Internal("Failed to check availability")
		}
		return utils.Respond(c, fiber.StatusOK, result)
	}

	id, err := uuid.Parse(propertyID)
	if err != nil {
		return utils.BadRequest("Invalid property id")
	}

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", id).Error; err != nil {
		return utils.NotFound("Listing not found")
	}

	result, err := services.CheckListingAvailability(database.DB, &listing, checkIn, checkOut)
	if err != nil {
		return utils.Internal("Failed to check availability")
	}
	return utils.Respond(c, fiber.StatusOK, result)
}

func GetMyBookings(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var bookings []models.Booking
	if err := database.DB.
		Preload("Hotel").
		Preload("Room").
		Preload("Listing").
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return utils.Internal("Failed to fetch bookings")
	}

	return utils.Respond(c, fiber.StatusOK, bookings)
}

// GetPropertyBookings lists bookings against every property the requester
// owns, for the owner dashboard.
func GetPropertyBookings(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var hotelIDs []uuid.UUID
	if err := database.DB.Model(&models.Hotel{}).Where("owner_id = ?", userID).Pluck("id", &hotelIDs).Error; err != nil {
		return utils.Internal("Failed to fetch properties")
	}

	var listingIDs []uuid.UUID
	if err := database.DB.Model(&models.Listing{}).Where("owner_id = ?", userID).Pluck("id", &listingIDs).Error; err != nil {
		return utils.Internal("Failed to fetch properties")
	}

	var bookings []models.Booking
	if err := database.DB.
		Preload("Hotel").
		Preload("Room").
		Preload("Listing").
		Preload("User").
		Where("hotel_id IN ? OR listing_id IN ?", hotelIDs, listingIDs).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return utils.Internal("Failed to fetch bookings")
	}

	return utils.Respond(c, fiber.StatusOK, bookings)
}

// canManageBooking reports whether the requester is the booking's guest or
// the owner of the booked property. Everyone else is forbidden.
func canManageBooking(booking models.Booking, ownerID, requesterID uuid.UUID) bool {
	return booking.UserID == requesterID || (ownerID != uuid.Nil && ownerID == requesterID)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// UpdateBookingStatus lets the booking's user or the property's owner move
// the booking through its lifecycle. Terminal states stay terminal.
func UpdateBookingStatus(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	bookingID := c.Params("bookingId")

	var req UpdateBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest("Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return utils.BadRequest("Validation failed", err.Error())
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", bookingID).Error; err != nil {
		return utils.NotFound("Booking not found")
	}

	ownerID, propertyName := bookingOwner(booking)
	if !canManageBooking(booking, ownerID, userID) {
		return utils.Forbidden("Unauthorized to update this booking")
	}

	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCompleted {
		return utils.BadRequest("Booking is already " + booking.Status)
	}

	booking.Status = req.Status
	if err := database.DB.Save(&booking).Error; err != nil {
		return utils.Internal("Failed to update booking status")
	}

	if err := database.DB.Preload("Hotel").Preload("Room").Preload("Listing").Preload("User").First(&booking, "id = ?", booking.ID).Error; err != nil {
		log.Printf("⚠️ Failed to reload booking %s with associations: %v", booking.ID, err)
	}

	if ownerID != uuid.Nil {
		go func() {
			websocket.Notify <- &websocket.BookingNotification{
				OwnerID:    ownerID,
				Event:      "booking.status_changed",
				BookingID:  booking.ID,
				Reference:  booking.Reference,
				Property:   propertyName,
				CheckIn:    booking.CheckIn,
				CheckOut:   booking.CheckOut,
				TotalPrice: booking.TotalPrice,
				Status:     booking.Status,
			}
		}()
	}

	return utils.Respond(c, fiber.StatusOK, fiber.Map{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}

// DownloadInvoice renders the booking invoice PDF on demand.
func DownloadInvoice(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Hotel").Preload("Room").Preload("Listing").Preload("User").First(&booking, "id = ?", bookingID).Error; err != nil {
		return utils.NotFound("Booking not found")
	}

	ownerID, _ := bookingOwner(booking)
	if !canManageBooking(booking, ownerID, userID) {
		return utils.Forbidden("Unauthorized to access this invoice")
	}

	pdfBytes, err := services.GenerateInvoicePDF(booking, booking.User)
	if err != nil {
		return utils.Internal("Failed to generate invoice")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoice-`+booking.Reference+`.pdf"`)
	return c.Send(pdfBytes)
}
