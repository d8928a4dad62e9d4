package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/SutariyaDeep123/RentRealm/middleware"
	"github.com/SutariyaDeep123/RentRealm/models"
	"github.com/SutariyaDeep123/RentRealm/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// buildTestApp wires the availability route the way cmd/api does, with the
// envelope error handler, so responses match production shape.
func buildTestApp() *fiber.App {
	os.Setenv("JWT_SECRET", "testsecret")
	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})

	booking := app.Group("/booking", middleware.Protected())
	booking.Get("/check-availability", CheckAvailability)
	return app
}

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("testsecret"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

type errorEnvelope struct {
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data"`
	Error     *struct {
		Status    int      `json:"status"`
		Message   string   `json:"message"`
		SubErrors []string `json:"subErrors"`
	} `json:"error"`
}

func doRequest(t *testing.T, app *fiber.App, target, token string) (*http.Response, errorEnvelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("response is not a valid envelope: %v (%s)", err, body)
	}
	return resp, env
}

func TestCheckAvailabilityRequiresToken(t *testing.T) {
	app := buildTestApp()

	resp, env := doRequest(t, app, "/booking/check-availability", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing JWT, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Message == "" {
		t.Fatal("expected an error payload in the envelope")
	}
	if env.Data != nil {
		t.Fatal("error responses must carry a null data field")
	}
}

func TestCheckAvailabilityMissingDates(t *testing.T) {
	app := buildTestApp()
	token := signTestToken(t, "user")

	resp, env := doRequest(t, app, "/booking/check-availability?type=hotel", token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing dates, got %d", resp.StatusCode)
	}
	if env.Error.Message != "Please provide both check-in and check-out dates" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
	if env.Error.SubErrors == nil {
		t.Fatal("subErrors must serialize as an empty array, not null")
	}
	if env.Timestamp == "" {
		t.Fatal("envelope must carry a timestamp")
	}
}

func TestCheckAvailabilityRejectsInvalidDates(t *testing.T) {
	app := buildTestApp()
	token := signTestToken(t, "user")

	resp, env := doRequest(t, app, "/booking/check-availability?checkIn=not-a-date&checkOut=2024-06-04", token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unparseable date, got %d", resp.StatusCode)
	}
	if env.Error.Message != "Invalid check-in or check-out date" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}

func TestCheckAvailabilityRejectsInvertedRange(t *testing.T) {
	app := buildTestApp()
	token := signTestToken(t, "user")

	resp, env := doRequest(t, app, "/booking/check-availability?checkIn=2024-06-04&checkOut=2024-06-01", token)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", resp.StatusCode)
	}
	if env.Error.Message != "Check-out date must be after check-in date" {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}

func TestCanManageBooking(t *testing.T) {
	guestID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()
	booking := models.Booking{UserID: guestID}

	if !canManageBooking(booking, ownerID, guestID) {
		t.Fatal("the booking's guest must be allowed to manage it")
	}
	if !canManageBooking(booking, ownerID, ownerID) {
		t.Fatal("the property owner must be allowed to manage the booking")
	}
	if canManageBooking(booking, ownerID, strangerID) {
		t.Fatal("a stranger must be forbidden from managing the booking")
	}
	if canManageBooking(booking, uuid.Nil, strangerID) {
		t.Fatal("an unresolved owner must not open the booking to strangers")
	}
}

func TestBookingFieldsSurviveSerialization(t *testing.T) {
	// The booking returned at creation and the one later listed for the user
	// travel through the same JSON shape; the core fields must reproduce
	// exactly.
	created := models.Booking{
		ID:          uuid.New(),
		Reference:   "RR-TEST1234",
		UserID:      uuid.New(),
		BookingType: models.BookingTypeHotel,
		CheckIn:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		GuestCount:  2,
		TotalPrice:  450,
		Status:      models.BookingStatusConfirmed,
	}

	payload, err := json.Marshal(created)
	if err != nil {
		t.Fatalf("failed to marshal booking: %v", err)
	}
	var listed models.Booking
	if err := json.Unmarshal(payload, &listed); err != nil {
		t.Fatalf("failed to unmarshal booking: %v", err)
	}

	if !listed.CheckIn.Equal(created.CheckIn) || !listed.CheckOut.Equal(created.CheckOut) {
		t.Fatalf("dates did not survive: got %v..%v", listed.CheckIn, listed.CheckOut)
	}
	if listed.TotalPrice != created.TotalPrice {
		t.Fatalf("total price did not survive: got %v", listed.TotalPrice)
	}
	if listed.Status != created.Status {
		t.Fatalf("status did not survive: got %q", listed.Status)
	}
	if listed.Reference != created.Reference {
		t.Fatalf("reference did not survive: got %q", listed.Reference)
	}
}

func TestParseBookingDateAcceptsBothFormats(t *testing.T) {
	if _, err := parseBookingDate("2024-06-01"); err != nil {
		t.Fatalf("date-only format rejected: %v", err)
	}
	if _, err := parseBookingDate("2024-06-01T15:04:05Z"); err != nil {
		t.Fatalf("RFC3339 format rejected: %v", err)
	}
	if _, err := parseBookingDate("June 1st"); err == nil {
		t.Fatal("expected an error for a free-form date")
	}
}
