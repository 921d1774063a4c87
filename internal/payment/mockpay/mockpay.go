package mockpay

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"
)

const defaultLatency = 1200 * time.Millisecond

// Decline reason codes surfaced in charge results.
const (
	ReasonSimulatedFailure = "simulated_failure"
	ReasonMissingMethod    = "missing_payment_method"
)

// Config tunes the mock gateway.
type Config struct {
	SimulatedLatencyMS int `json:"simulated_latency_ms"` // artificial processing delay
}

// ChargeInput describes one charge attempt.
type ChargeInput struct {
	OrderNo         string
	Amount          string
	PaymentMethodID string
	SimulateFailure bool
}

// ChargeResult is the processor decision.
type ChargeResult struct {
	Approved      bool
	TransactionID string
	Reason        string
}

// Gateway is an in-process stand-in for a card processor. It mimics
// processor latency and deterministic declines so the payment flow can
// be exercised end to end without an external dependency.
type Gateway struct {
	latency time.Duration
}

// New creates the gateway.
func New(cfg Config) *Gateway {
	latency := defaultLatency
	if cfg.SimulatedLatencyMS > 0 {
		latency = time.Duration(cfg.SimulatedLatencyMS) * time.Millisecond
	}
	return &Gateway{latency: latency}
}

// Charge processes a mock payment. It declines when the caller asked
// for a simulated failure or supplied no payment method; everything
// else is approved after the configured delay.
func (g *Gateway) Charge(ctx context.Context, input ChargeInput) (*ChargeResult, error) {
	select {
	case <-time.After(g.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if input.SimulateFailure {
		return &ChargeResult{Approved: false, Reason: ReasonSimulatedFailure}, nil
	}
	if strings.TrimSpace(input.PaymentMethodID) == "" {
		return &ChargeResult{Approved: false, Reason: ReasonMissingMethod}, nil
	}

	return &ChargeResult{
		Approved:      true,
		TransactionID: newTransactionID(),
	}, nil
}

func newTransactionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "txn_" + hex.EncodeToString([]byte(time.Now().Format("20060102150405.000")))
	}
	return "txn_" + hex.EncodeToString(buf)
}
