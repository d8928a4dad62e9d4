package services

import (
	"testing"

	"github.com/SutariyaDeep123/RentRealm/models"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                 string
		aIn, aOut, bIn, bOut string
		want                 bool
	}{
		{"disjoint before", "2024-06-01", "2024-06-03", "2024-06-05", "2024-06-08", false},
		{"disjoint after", "2024-06-10", "2024-06-12", "2024-06-05", "2024-06-08", false},
		{"contained", "2024-06-06", "2024-06-07", "2024-06-05", "2024-06-08", true},
		{"containing", "2024-06-01", "2024-06-30", "2024-06-05", "2024-06-08", true},
		{"left edge overlap", "2024-06-03", "2024-06-06", "2024-06-05", "2024-06-08", true},
		{"right edge overlap", "2024-06-07", "2024-06-10", "2024-06-05", "2024-06-08", true},
		// Boundaries are inclusive: checking in the day another guest
		// checks out still conflicts.
		{"same-day turnover at start", "2024-06-08", "2024-06-11", "2024-06-05", "2024-06-08", true},
		{"same-day turnover at end", "2024-06-02", "2024-06-05", "2024-06-05", "2024-06-08", true},
		{"identical range", "2024-06-05", "2024-06-08", "2024-06-05", "2024-06-08", true},
	}

	for _, tc := range cases {
		got := Overlaps(date(tc.aIn), date(tc.aOut), date(tc.bIn), date(tc.bOut))
		if got != tc.want {
			t.Errorf("%s: Overlaps(%s..%s, %s..%s) = %v, want %v",
				tc.name, tc.aIn, tc.aOut, tc.bIn, tc.bOut, got, tc.want)
		}
	}
}

// Sale listings decide availability on the IsAvailable flag alone, before
// any ledger query; a sold listing stays unavailable no matter what dates
// are supplied.
func TestCheckListingAvailabilitySoldListing(t *testing.T) {
	sold := models.Listing{Type: models.ListingTypeSale, IsAvailable: false}

	result, err := CheckListingAvailability(nil, &sold, date("2024-06-01"), date("2024-06-04"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Available {
		t.Fatal("a sold listing must never report available")
	}

	result, err = CheckListingAvailability(nil, &sold, date("2030-01-01"), date("2030-12-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Available {
		t.Fatal("a sold listing must stay unavailable regardless of dates")
	}
}

func TestCheckListingAvailabilityUnsoldSaleListing(t *testing.T) {
	forSale := models.Listing{Type: models.ListingTypeSale, IsAvailable: true}

	result, err := CheckListingAvailability(nil, &forSale, date("2024-06-01"), date("2024-06-01"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Available {
		t.Fatal("an unsold sale listing must report available")
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	aIn, aOut := date("2024-06-03"), date("2024-06-06")
	bIn, bOut := date("2024-06-05"), date("2024-06-08")

	if Overlaps(aIn, aOut, bIn, bOut) != Overlaps(bIn, bOut, aIn, aOut) {
		t.Fatal("Overlaps must be symmetric in its arguments")
	}
}
