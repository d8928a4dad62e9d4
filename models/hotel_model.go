package models

import (
	"time"

	"github.com/google/uuid"
)

type Hotel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	Street  string `gorm:"size:255" json:"street"`
	City    string `gorm:"size:100;index" json:"city"`
	State   string `gorm:"size:100" json:"state"`
	Zip     string `gorm:"size:20" json:"zip"`
	Country string `gorm:"size:100" json:"country"`

	MainImage string   `gorm:"size:500" json:"main_image"`
	Images    []string `gorm:"serializer:json" json:"images"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Amenities []*Amenity `gorm:"many2many:hotel_amenities;" json:"amenities,omitempty"`
	Rooms     []Room     `gorm:"foreignkey:HotelID" json:"rooms,omitempty"`
	Owner     User       `gorm:"foreignkey:OwnerID" json:"owner,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
