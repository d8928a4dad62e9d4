package services

import (
	"testing"
	"time"
)

func seedRates(rates map[string]float64) {
	cacheMutex.Lock()
	ratesCache = rates
	lastFetchTime = time.Now()
	cacheMutex.Unlock()
}

func TestConvertFromUSDPassesUSDThrough(t *testing.T) {
	// USD must not touch the rate cache at all.
	seedRates(nil)

	got, err := ConvertFromUSD(250000, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 250000 {
		t.Fatalf("expected USD amount unchanged, got %v", got)
	}
}

func TestConvertFromUSD(t *testing.T) {
	seedRates(map[string]float64{"EUR": 0.9, "KES": 129.5})

	got, err := ConvertFromUSD(100, "EUR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 90 {
		t.Fatalf("expected 90 EUR for 100 USD at 0.9, got %v", got)
	}

	got, err = ConvertFromUSD(10, "KES")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1295 {
		t.Fatalf("expected 1295 KES for 10 USD at 129.5, got %v", got)
	}
}

func TestConvertFromUSDUnsupportedCurrency(t *testing.T) {
	seedRates(map[string]float64{"EUR": 0.9})

	if _, err := ConvertFromUSD(100, "XXX"); err == nil {
		t.Fatal("expected an error for a currency missing from the rate table")
	}
}
