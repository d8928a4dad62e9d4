package payments

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	config "github.com/SutariyaDeep123/RentRealm/configs"
)

// Stripe Checkout REST client. The provider hosts the payment page; booking
// parameters ride along as session metadata and come back with the session
// on retrieval, so no local checkout state is needed before capture.

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Mode          string            `json:"mode"`
	PaymentIntent string            `json:"payment_intent"`
	PaymentStatus string            `json:"payment_status"`
	CustomerEmail string            `json:"customer_email"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	Metadata      map[string]string `json:"metadata"`
}

type Refund struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PaymentIntent string `json:"payment_intent"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
}

type CheckoutSessionParams struct {
	Mode          string // "payment" or "subscription"
	Amount        int64  // minor units per billing unit
	Currency      string
	Quantity      int64
	ProductName   string
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

func apiBase() string {
	base := config.Config("STRIPE_API_BASE_URL")
	if base == "" {
		base = "https://api.stripe.com"
	}
	return base
}

// Provider calls are bounded; an unresponsive payment API must not pin
// request handlers.
var httpClient = &http.Client{Timeout: 15 * time.Second}

func doRequest(method, path string, form url.Values, out interface{}) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequest(method, apiBase()+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", config.Config("STRIPE_SECRET_KEY")))
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("stripe request failed (%s): %s", resp.Status, string(respBody))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func CreateCheckoutSession(params CheckoutSessionParams) (*CheckoutSession, error) {
	if params.Quantity < 1 {
		params.Quantity = 1
	}

	form := url.Values{}
	form.Set("mode", params.Mode)
	form.Set("payment_method_types[0]", "card")
	form.Set("customer_email", params.CustomerEmail)
	form.Set("line_items[0][price_data][currency]", strings.ToLower(params.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.Amount, 10))
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	if params.Mode == "subscription" {
		form.Set("line_items[0][price_data][recurring][interval]", "month")
	}
	form.Set("line_items[0][quantity]", strconv.FormatInt(params.Quantity, 10))
	for key, value := range params.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)

	var session CheckoutSession
	if err := doRequest(http.MethodPost, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func RetrieveCheckoutSession(sessionID string) (*CheckoutSession, error) {
	var session CheckoutSession
	if err := doRequest(http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(sessionID), nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func CreateRefund(paymentIntentID string) (*Refund, error) {
	form := url.Values{}
	form.Set("payment_intent", paymentIntentID)

	var refund Refund
	if err := doRequest(http.MethodPost, "/v1/refunds", form, &refund); err != nil {
		return nil, err
	}
	return &refund, nil
}
