package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopmono/shopmono/internal/config"
)

func TestSendOrderPaidEmailDisabled(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: false})
	err := svc.SendOrderPaidEmail("buyer@example.com", OrderPaidEmailInput{OrderID: 1})
	if !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled, got %v", err)
	}
}

func TestSendOrderPaidEmailMissingConfig(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{Enabled: true})
	err := svc.SendOrderPaidEmail("buyer@example.com", OrderPaidEmailInput{OrderID: 1})
	if !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got %v", err)
	}
}

func TestSendOrderPaidEmailRejectsBadRecipient(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "shop@example.com",
	})
	err := svc.SendOrderPaidEmail("not an address", OrderPaidEmailInput{OrderID: 1})
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestBuildEmailMessage(t *testing.T) {
	from := buildFromAddress("shop@example.com", "Shop Mono")
	msg := buildEmailMessage(from, "buyer@example.com", "Order #7 paid", "Thanks for your purchase.")

	for _, want := range []string{
		"From: ",
		"shop@example.com",
		"To: buyer@example.com",
		"Subject: ",
		"Content-Type: text/plain; charset=UTF-8",
		"Thanks for your purchase.",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}

	headers, _, found := strings.Cut(msg, "\r\n\r\n")
	if !found {
		t.Fatalf("message has no header/body separator")
	}
	if strings.Contains(headers, "Thanks") {
		t.Fatalf("body leaked into headers:\n%s", headers)
	}
}
