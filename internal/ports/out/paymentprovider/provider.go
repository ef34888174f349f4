package paymentprovider

import (
	"context"
	"time"
)

// Customer is prefill information passed to the gateway.
type Customer struct {
	Name    string
	Email   string
	Contact string
}

// ChargeRequest describes a single payment to collect.
type ChargeRequest struct {
	// Amount in INR. Gateways that bill in paise convert at the adapter.
	Amount      int64
	Currency    string
	Description string
	Customer    Customer
}

// Receipt is the gateway's confirmation of a successful charge.
type Receipt struct {
	PaymentID string
	OrderID   string
	Signature string
	PaidAt    time.Time
}

// Provider collects payments.
//
// The shipped adapter simulates a Razorpay checkout that always succeeds; the
// interface exists so a real gateway's declines and timeouts propagate as
// distinguishable errors rather than being baked in as impossible.
type Provider interface {
	Charge(ctx context.Context, req ChargeRequest) (Receipt, error)
}
