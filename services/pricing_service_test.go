package services

import (
	"testing"
	"time"

	"github.com/SutariyaDeep123/RentRealm/models"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculateStayPriceMonthlyRent(t *testing.T) {
	// Jan 15 -> Mar 15 spans exactly two calendar months; days inside the
	// month never pro-rate.
	units, total, err := CalculateStayPrice(models.ListingTypeRent, date("2024-01-15"), date("2024-03-15"), 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if units != 2 {
		t.Fatalf("expected 2 months, got %d", units)
	}
	if total != 2000 {
		t.Fatalf("expected total 2000, got %v", total)
	}
}

func TestCalculateStayPriceRentUnderOneMonth(t *testing.T) {
	_, _, err := CalculateStayPrice(models.ListingTypeRent, date("2024-01-15"), date("2024-01-25"), 1000)
	if err != ErrZeroDuration {
		t.Fatalf("expected ErrZeroDuration for sub-month rent, got %v", err)
	}
}

func TestCalculateStayPriceNightly(t *testing.T) {
	units, total, err := CalculateStayPrice(models.ListingTypeTemporaryRent, date("2024-06-01"), date("2024-06-04"), 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if units != 3 {
		t.Fatalf("expected 3 nights, got %d", units)
	}
	if total != 450 {
		t.Fatalf("expected total 450, got %v", total)
	}
}

func TestCalculateStayPricePartialNightRoundsUp(t *testing.T) {
	checkIn := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)

	units, _, err := CalculateStayPrice(models.ListingTypeTemporaryRent, checkIn, checkOut, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if units != 2 {
		t.Fatalf("expected partial second night to round up to 2, got %d", units)
	}
}

func TestCalculateStayPriceSaleIgnoresDates(t *testing.T) {
	// A purchase has no interval semantics: the dates may even be equal.
	now := time.Now()
	units, total, err := CalculateStayPrice(models.ListingTypeSale, now, now, 250000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if units != 1 {
		t.Fatalf("expected a single unit for a sale, got %d", units)
	}
	if total != 250000 {
		t.Fatalf("expected total 250000, got %v", total)
	}
}

func TestCalculateStayPriceInvalidRange(t *testing.T) {
	_, _, err := CalculateStayPrice(models.ListingTypeTemporaryRent, date("2024-06-04"), date("2024-06-01"), 150)
	if err != ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	_, _, err = CalculateStayPrice(models.ListingTypeRent, date("2024-06-01"), date("2024-06-01"), 150)
	if err != ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange for zero-length rent, got %v", err)
	}
}

func TestCalculateStayPriceDeterministic(t *testing.T) {
	in, out := date("2024-06-01"), date("2024-06-09")

	_, first, err := CalculateStayPrice(models.ListingTypeTemporaryRent, in, out, 99.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		_, again, err := CalculateStayPrice(models.ListingTypeTemporaryRent, in, out, 99.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("pricing is not deterministic: %v vs %v", again, first)
		}
	}
}

func TestMonthsBetweenAcrossYears(t *testing.T) {
	if got := MonthsBetween(date("2023-11-10"), date("2024-02-10")); got != 3 {
		t.Fatalf("expected 3 months across year boundary, got %d", got)
	}
}
