package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
)

// newFakeStripe points the client at a local server so the request wiring
// can be exercised without touching the real API.
func newFakeStripe(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	os.Setenv("STRIPE_API_BASE_URL", server.URL)
	os.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Cleanup(func() {
		server.Close()
		os.Unsetenv("STRIPE_API_BASE_URL")
	})
	return server
}

func TestCreateCheckoutSession(t *testing.T) {
	var gotForm url.Values
	var gotAuth string

	newFakeStripe(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/checkout/sessions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		gotForm = r.PostForm

		json.NewEncoder(w).Encode(CheckoutSession{
			ID:            "cs_test_1",
			URL:           "https://checkout.stripe.com/pay/cs_test_1",
			Mode:          "payment",
			PaymentStatus: "unpaid",
		})
	})

	session, err := CreateCheckoutSession(CheckoutSessionParams{
		Mode:          "payment",
		Amount:        45000,
		Currency:      "USD",
		Quantity:      1,
		ProductName:   "Seaside Villa",
		CustomerEmail: "guest@example.com",
		Metadata: map[string]string{
			"bookingId":   "b-1",
			"paymentType": "sale",
		},
		SuccessURL: "https://rentrealm.test/success",
		CancelURL:  "https://rentrealm.test/cancel",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.ID != "cs_test_1" {
		t.Fatalf("expected session cs_test_1, got %s", session.ID)
	}

	if gotAuth != "Bearer sk_test_123" {
		t.Errorf("expected bearer auth with secret key, got %q", gotAuth)
	}
	if got := gotForm.Get("line_items[0][price_data][unit_amount]"); got != "45000" {
		t.Errorf("expected unit_amount 45000, got %q", got)
	}
	if got := gotForm.Get("line_items[0][price_data][currency]"); got != "usd" {
		t.Errorf("expected lowercase currency, got %q", got)
	}
	if got := gotForm.Get("metadata[paymentType]"); got != "sale" {
		t.Errorf("expected paymentType metadata, got %q", got)
	}
	if got := gotForm.Get("line_items[0][price_data][recurring][interval]"); got != "" {
		t.Errorf("one-time payment must not carry a recurring interval, got %q", got)
	}
}

func TestCreateCheckoutSessionSubscription(t *testing.T) {
	var gotForm url.Values

	newFakeStripe(t, func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotForm = r.PostForm
		json.NewEncoder(w).Encode(CheckoutSession{ID: "cs_test_2", Mode: "subscription"})
	})

	_, err := CreateCheckoutSession(CheckoutSessionParams{
		Mode:        "subscription",
		Amount:      100000,
		Currency:    "usd",
		Quantity:    0, // clamped to 1
		ProductName: "Downtown Flat",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gotForm.Get("line_items[0][price_data][recurring][interval]"); got != "month" {
		t.Errorf("expected monthly recurring interval, got %q", got)
	}
	if got := gotForm.Get("line_items[0][quantity]"); got != "1" {
		t.Errorf("expected quantity clamped to 1, got %q", got)
	}
}

func TestRetrieveCheckoutSession(t *testing.T) {
	newFakeStripe(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/checkout/sessions/cs_test_3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(CheckoutSession{
			ID:            "cs_test_3",
			PaymentIntent: "pi_123",
			PaymentStatus: "paid",
			Metadata:      map[string]string{"bookingId": "b-9"},
		})
	})

	session, err := RetrieveCheckoutSession("cs_test_3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.PaymentIntent != "pi_123" {
		t.Fatalf("expected payment intent pi_123, got %s", session.PaymentIntent)
	}
	if session.Metadata["bookingId"] != "b-9" {
		t.Fatalf("expected metadata to round-trip, got %v", session.Metadata)
	}
}

func TestCheckoutMetadataRoundTrip(t *testing.T) {
	// Booking parameters ride along as session metadata and must come back
	// intact on retrieval; there is no local checkout state to fall back on.
	stored := map[string]string{}

	newFakeStripe(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/checkout/sessions":
			r.ParseForm()
			for key, values := range r.PostForm {
				if strings.HasPrefix(key, "metadata[") {
					stored[key[len("metadata["):len(key)-1]] = values[0]
				}
			}
			json.NewEncoder(w).Encode(CheckoutSession{ID: "cs_rt_1"})
		case r.Method == http.MethodGet && r.URL.Path == "/v1/checkout/sessions/cs_rt_1":
			json.NewEncoder(w).Encode(CheckoutSession{ID: "cs_rt_1", Metadata: stored})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	sent := map[string]string{
		"userId":     "u-1",
		"type":       "listing",
		"propertyId": "l-7",
		"checkIn":    "2024-06-01",
		"checkOut":   "2024-06-04",
		"guestCount": "2",
	}
	if _, err := CreateCheckoutSession(CheckoutSessionParams{
		Mode:        "payment",
		Amount:      45000,
		Currency:    "usd",
		ProductName: "Property Booking",
		Metadata:    sent,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, err := RetrieveCheckoutSession("cs_rt_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.Metadata) != len(sent) {
		t.Fatalf("metadata size changed in transit: %v", session.Metadata)
	}
	for key, want := range sent {
		if session.Metadata[key] != want {
			t.Fatalf("metadata %q did not round-trip: got %q, want %q", key, session.Metadata[key], want)
		}
	}
}

func TestCreateRefund(t *testing.T) {
	newFakeStripe(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/refunds" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		r.ParseForm()
		if got := r.PostForm.Get("payment_intent"); got != "pi_123" {
			t.Errorf("expected payment_intent pi_123, got %q", got)
		}
		json.NewEncoder(w).Encode(Refund{ID: "re_1", Status: "succeeded", PaymentIntent: "pi_123"})
	})

	refund, err := CreateRefund("pi_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refund.Status != "succeeded" {
		t.Fatalf("expected succeeded refund, got %s", refund.Status)
	}
}

func TestCreateRefundProviderError(t *testing.T) {
	newFakeStripe(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error":{"message":"charge has already been refunded"}}`))
	})

	if _, err := CreateRefund("pi_456"); err == nil {
		t.Fatal("expected an error for a non-200 provider response")
	}
}
