package services

import (
	"time"

	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityResult is computed on demand and never cached; a concurrent
// booking can invalidate it at any moment. Callers must branch on Available,
// never on Message.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

// Overlaps reports whether two [in, out] intervals conflict. Boundaries are
// inclusive: a check-out and a check-in on the same day conflict, so there
// is no same-day turnover.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !aIn.After(bOut) && !aOut.Before(bIn)
}

func findOverlapping(db *gorm.DB, column string, propertyID uuid.UUID, checkIn, checkOut time.Time) (*models.Booking, error) {
	var booking models.Booking
	err := db.
		Where(column+" = ? AND status <> ?", propertyID, models.BookingStatusCancelled).
		Where("check_in <= ? AND check_out >= ?", checkOut, checkIn).
		First(&booking).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// FindOverlappingRoomBooking returns a non-cancelled booking conflicting
// with the requested range on the room, or nil.
func FindOverlappingRoomBooking(db *gorm.DB, roomID uuid.UUID, checkIn, checkOut time.Time) (*models.Booking, error) {
	return findOverlapping(db, "room_id", roomID, checkIn, checkOut)
}

// FindOverlappingListingBooking is the listing-keyed variant.
func FindOverlappingListingBooking(db *gorm.DB, listingID uuid.UUID, checkIn, checkOut time.Time) (*models.Booking, error) {
	return findOverlapping(db, "listing_id", listingID, checkIn, checkOut)
}

// CheckRoomAvailability runs the ledger overlap query for a hotel room.
// Passing a transaction handle makes it usable both for the non-binding
// preview and for the authoritative re-check under a row lock.
func CheckRoomAvailability(db *gorm.DB, roomID uuid.UUID, checkIn, checkOut time.Time) (AvailabilityResult, error) {
	existing, err := FindOverlappingRoomBooking(db, roomID, checkIn, checkOut)
	if err != nil {
		return AvailabilityResult{}, err
	}
	if existing != nil {
		return AvailabilityResult{Available: false, Message: "Room is not available for the selected dates"}, nil
	}
	return AvailabilityResult{Available: true, Message: "Room is available"}, nil
}

// CheckListingAvailability decides bookability for a listing. Sale listings
// have no interval semantics; availability is the IsAvailable flag alone.
func CheckListingAvailability(db *gorm.DB, listing *models.Listing, checkIn, checkOut time.Time) (AvailabilityResult, error) {
	if listing.Type == models.ListingTypeSale {
		if !listing.IsAvailable {
			return AvailabilityResult{Available: false, Message: "This property has already been sold"}, nil
		}
		return AvailabilityResult{Available: true, Message: "Property is available"}, nil
	}

	existing, err := FindOverlappingListingBooking(db, listing.ID, checkIn, checkOut)
	if err != nil {
		return AvailabilityResult{}, err
	}
	if existing != nil {
		return AvailabilityResult{Available: false, Message: "Property is not available for the selected dates"}, nil
	}
	return AvailabilityResult{Available: true, Message: "Property is available"}, nil
}
