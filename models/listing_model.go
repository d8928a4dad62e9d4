package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ListingTypeSale          = "sale"
	ListingTypeRent          = "rent"
	ListingTypeTemporaryRent = "temporary_rent"
)

// Listing is a non-hotel property unit. Type decides pricing semantics:
// sale is a one-time purchase at Price, rent is Price per whole month,
// temporary_rent is Price per night.
type Listing struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Type         string    `gorm:"size:20;not null;index" json:"type"`
	PropertyType string    `gorm:"size:20;not null" json:"property_type"`
	Description  string    `gorm:"type:text" json:"description"`

	Street  string `gorm:"size:255" json:"street"`
	City    string `gorm:"size:100;index" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Zip     string `gorm:"size:20" json:"zip"`
	Country string `gorm:"size:100" json:"country"`

	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	Area      float64 `json:"area"`

	Price float64 `gorm:"type:numeric(12,2);not null" json:"price"`

	// Flipped to false forever once a sale listing is purchased.
	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`
	IsFeatured  bool `gorm:"default:false" json:"is_featured"`

	MainImage string   `gorm:"size:500" json:"main_image"`
	Images    []string `gorm:"serializer:json" json:"images"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	AvailableFrom *time.Time `json:"available_from"`
	AvailableTo   *time.Time `json:"available_to"`

	Amenities []*Amenity `gorm:"many2many:listing_amenities;" json:"amenities,omitempty"`
	Owner     User       `gorm:"foreignkey:OwnerID" json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
