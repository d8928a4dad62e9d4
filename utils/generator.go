package utils

import (
	"math/rand"
	"time"

	config "github.com/SutariyaDeep123/RentRealm/configs"
	"gorm.io/gorm"
)

const bookingReferenceLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func IsDevelopment() bool {
	return config.Config("APP_ENV") != "production"
}

// GenerateBookingReference returns a short human-readable code that is not
// already used by another booking. Printed on invoices and emails.
func GenerateBookingReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, bookingReferenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := "RR-" + string(b)

		var count int64
		err := tx.Table("bookings").Where("reference = ?", code).Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
}
