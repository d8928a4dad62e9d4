package services

import (
	"errors"
	"math"
	"time"

	"github.com/SutariyaDeep123/RentRealm/models"
)

var (
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
	ErrZeroDuration     = errors.New("stay must cover at least one full month")
)

// NightsBetween counts billable nights, rounding partial days up.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// MonthsBetween counts whole calendar months between two dates. A stay from
// Jan 15 to Mar 15 is two months; days within the month are not pro-rated.
func MonthsBetween(checkIn, checkOut time.Time) int {
	return (checkOut.Year()-checkIn.Year())*12 + int(checkOut.Month()-checkIn.Month())
}

// CalculateStayPrice is the deterministic pricing function behind both the
// availability preview and the authoritative booking path. Same inputs
// always produce the same total.
//
// sale: unit price, no interval semantics. rent: whole months x unit price.
// temporary_rent and hotel rooms: nights x unit price.
func CalculateStayPrice(listingType string, checkIn, checkOut time.Time, unitPrice float64) (int, float64, error) {
	if listingType == models.ListingTypeSale {
		return 1, unitPrice, nil
	}

	if !checkOut.After(checkIn) {
		return 0, 0, ErrInvalidDateRange
	}

	if listingType == models.ListingTypeRent {
		months := MonthsBetween(checkIn, checkOut)
		if months <= 0 {
			return 0, 0, ErrZeroDuration
		}
		return months, float64(months) * unitPrice, nil
	}

	nights := NightsBetween(checkIn, checkOut)
	return nights, float64(nights) * unitPrice, nil
}
