package paymentprovider

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/TECHBREW-hub/TravelSure/internal/adapters/memory/clock"
	"github.com/TECHBREW-hub/TravelSure/internal/ports/out/paymentprovider"
)

func testRequest() paymentprovider.ChargeRequest {
	return paymentprovider.ChargeRequest{
		Amount:      12999,
		Currency:    "INR",
		Description: "Payment for Goa Beach Paradise",
		Customer: paymentprovider.Customer{
			Name:    "John Doe",
			Email:   "john@example.com",
			Contact: "+91 9876543210",
		},
	}
}

func TestCharge_ReceiptShape(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	p := NewProvider(0, clock.NewManualClock(now))

	r, err := p.Charge(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Charge: %v", err)
	}

	wantPrefix := fmt.Sprintf("order_%d_", now.UnixMilli())
	if !strings.HasPrefix(r.OrderID, wantPrefix) {
		t.Fatalf("OrderID = %q, want prefix %q", r.OrderID, wantPrefix)
	}
	if !strings.HasPrefix(r.PaymentID, fmt.Sprintf("pay_%d_", now.UnixMilli())) {
		t.Fatalf("PaymentID = %q", r.PaymentID)
	}
	if !strings.HasPrefix(r.Signature, "sig_") {
		t.Fatalf("Signature = %q", r.Signature)
	}
	if !r.PaidAt.Equal(now) {
		t.Fatalf("PaidAt = %v, want clock time %v", r.PaidAt, now)
	}
}

func TestCharge_UniqueIdentifiers(t *testing.T) {
	t.Parallel()
	p := NewProvider(0, clock.NewManualClock(time.Now()))

	a, err := p.Charge(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Charge: %v", err)
	}
	b, err := p.Charge(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Charge: %v", err)
	}
	if a.OrderID == b.OrderID || a.PaymentID == b.PaymentID {
		t.Fatalf("identifiers should differ per charge: %q vs %q", a.OrderID, b.OrderID)
	}
}

func TestCharge_HonorsCancellation(t *testing.T) {
	t.Parallel()
	p := NewProvider(time.Minute, clock.NewManualClock(time.Now()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Charge(ctx, testRequest()); err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
