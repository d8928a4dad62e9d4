package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingTypeHotel   = "hotel"
	BookingTypeListing = "listing"

	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking links a user to either a Room+Hotel or a Listing over a date
// range. Sale purchases reuse the same row with CheckIn == CheckOut set to
// the moment of purchase.
type Booking struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Reference   string    `gorm:"size:20;not null;unique" json:"reference"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	BookingType string    `gorm:"size:10;not null" json:"bookingType"`

	RoomID    *uuid.UUID `gorm:"type:uuid;index" json:"room_id,omitempty"`
	HotelID   *uuid.UUID `gorm:"type:uuid;index" json:"hotel_id,omitempty"`
	ListingID *uuid.UUID `gorm:"type:uuid;index" json:"listing_id,omitempty"`

	CheckIn         time.Time `gorm:"not null" json:"checkIn"`
	CheckOut        time.Time `gorm:"not null" json:"checkOut"`
	GuestCount      int       `gorm:"not null;default:1" json:"guestCount"`
	SpecialRequests string    `gorm:"type:text" json:"specialRequests"`
	TotalPrice      float64   `gorm:"type:numeric(12,2);not null" json:"totalPrice"`
	Status          string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	InvoiceURL *string `gorm:"size:500" json:"invoice_url,omitempty"`

	User    User     `gorm:"foreignkey:UserID" json:"user,omitempty"`
	Room    *Room    `gorm:"foreignkey:RoomID" json:"room,omitempty"`
	Hotel   *Hotel   `gorm:"foreignkey:HotelID" json:"hotel,omitempty"`
	Listing *Listing `gorm:"foreignkey:ListingID" json:"listing,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
