package models

import (
	"time"

	"github.com/google/uuid"
)

// Room is a bookable unit inside a Hotel, always priced per night.
type Room struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	HotelID     uuid.UUID `gorm:"type:uuid;not null;index" json:"hotel_id"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Capacity    int       `gorm:"not null;default:2" json:"capacity"`

	MainImage string   `gorm:"size:500" json:"main_image"`
	Images    []string `gorm:"serializer:json" json:"images"`

	Amenities []*Amenity `gorm:"many2many:room_amenities;" json:"amenities,omitempty"`
	Hotel     Hotel      `gorm:"foreignkey:HotelID" json:"hotel,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
