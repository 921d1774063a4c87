package mockpay

import (
	"context"
	"testing"
	"time"
)

func newTestGateway() *Gateway {
	return New(Config{SimulatedLatencyMS: 1})
}

func TestChargeApproved(t *testing.T) {
	gw := newTestGateway()
	result, err := gw.Charge(context.Background(), ChargeInput{
		OrderNo:         "1001",
		Amount:          "19.99",
		PaymentMethodID: "pm_test_123",
	})
	if err != nil {
		t.Fatalf("charge failed: %v", err)
	}
	if !result.Approved {
		t.Fatalf("expected approval, got reason %s", result.Reason)
	}
	if result.TransactionID == "" {
		t.Fatalf("expected transaction id")
	}
}

func TestChargeDeclinedOnSimulatedFailure(t *testing.T) {
	gw := newTestGateway()
	result, err := gw.Charge(context.Background(), ChargeInput{
		OrderNo:         "1001",
		PaymentMethodID: "pm_test_123",
		SimulateFailure: true,
	})
	if err != nil {
		t.Fatalf("charge failed: %v", err)
	}
	if result.Approved {
		t.Fatalf("expected decline")
	}
	if result.Reason != ReasonSimulatedFailure {
		t.Fatalf("unexpected reason: %s", result.Reason)
	}
}

func TestChargeDeclinedOnMissingMethod(t *testing.T) {
	gw := newTestGateway()
	result, err := gw.Charge(context.Background(), ChargeInput{OrderNo: "1001"})
	if err != nil {
		t.Fatalf("charge failed: %v", err)
	}
	if result.Approved {
		t.Fatalf("expected decline")
	}
	if result.Reason != ReasonMissingMethod {
		t.Fatalf("unexpected reason: %s", result.Reason)
	}
}

func TestChargeHonorsContextCancellation(t *testing.T) {
	gw := New(Config{SimulatedLatencyMS: 5000})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := gw.Charge(ctx, ChargeInput{PaymentMethodID: "pm_test_123"}); err == nil {
		t.Fatalf("expected context error")
	}
}
