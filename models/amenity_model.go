package models

import (
	"time"

	"github.com/google/uuid"
)

type Amenity struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"size:100;not null;unique" json:"name"`
	Icon        *string   `gorm:"size:255" json:"icon"`
	Description *string   `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
