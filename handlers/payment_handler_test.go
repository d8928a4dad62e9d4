package handlers

import (
	"testing"

	"github.com/SutariyaDeep123/RentRealm/models"
)

func strPtr(s string) *string { return &s }

func TestRecordedRefundReturnsPriorRefund(t *testing.T) {
	payment := models.Payment{
		SessionID:    "cs_test_1",
		Status:       "refunded",
		RefundID:     strPtr("re_1"),
		RefundStatus: strPtr("succeeded"),
	}

	prior := recordedRefund(payment)
	if prior == nil {
		t.Fatal("expected the recorded refund, got nil")
	}
	if prior.ID != "re_1" || prior.Status != "succeeded" {
		t.Fatalf("recorded refund mismatch: %+v", prior)
	}
}

func TestRecordedRefundNilWhenNotYetRefunded(t *testing.T) {
	payment := models.Payment{SessionID: "cs_test_2", Status: "pending"}

	if prior := recordedRefund(payment); prior != nil {
		t.Fatalf("expected nil for an unrefunded payment, got %+v", prior)
	}
}

func TestRecordedRefundMissingRefundID(t *testing.T) {
	// RefundStatus alone is enough to short-circuit; the ID may be absent if
	// the save after the provider call partially failed.
	payment := models.Payment{SessionID: "cs_test_3", RefundStatus: strPtr("succeeded")}

	prior := recordedRefund(payment)
	if prior == nil {
		t.Fatal("expected the recorded refund even without an ID")
	}
	if prior.ID != "" {
		t.Fatalf("expected empty refund ID, got %q", prior.ID)
	}
}
