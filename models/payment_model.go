package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment tracks one checkout session at the provider. The unique SessionID
// makes the refund flow idempotent: a second refund request for the same
// session finds RefundStatus already set and returns without charging the
// provider again.
type Payment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	BookingID *uuid.UUID `gorm:"type:uuid;unique" json:"booking_id,omitempty"`

	SessionID       string  `gorm:"size:255;not null;unique" json:"session_id"`
	PaymentIntentID *string `gorm:"size:255;unique" json:"payment_intent_id,omitempty"`

	Amount   int64  `gorm:"not null" json:"amount"`
	Currency string `gorm:"size:3;not null" json:"currency"`
	Status   string `gorm:"size:20;not null" json:"status"`

	RefundID     *string `gorm:"size:255;unique" json:"refund_id,omitempty"`
	RefundStatus *string `gorm:"size:20" json:"refund_status,omitempty"`

	Booking *Booking `gorm:"foreignkey:BookingID" json:"booking,omitempty"`
	User    User     `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
