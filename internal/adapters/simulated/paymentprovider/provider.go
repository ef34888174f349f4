// Package paymentprovider simulates a Razorpay checkout that always collects
// the payment. Order and payment identifiers follow the gateway's shapes so
// downstream consumers see realistic receipts.
package paymentprovider

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	clockport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/clock"
	"github.com/TECHBREW-hub/TravelSure/internal/ports/out/paymentprovider"
)

// Provider implements paymentprovider.Provider.
type Provider struct {
	delay time.Duration
	clk   clockport.Clock
}

// NewProvider returns a provider that sleeps for delay before confirming.
func NewProvider(delay time.Duration, clk clockport.Clock) *Provider {
	return &Provider{delay: delay, clk: clk}
}

func (p *Provider) Charge(ctx context.Context, req paymentprovider.ChargeRequest) (paymentprovider.Receipt, error) {
	_ = req
	if err := p.wait(ctx); err != nil {
		return paymentprovider.Receipt{}, err
	}

	now := p.clk.Now()
	suffix := randomSuffix()
	return paymentprovider.Receipt{
		OrderID:   fmt.Sprintf("order_%d_%s", now.UnixMilli(), suffix),
		PaymentID: fmt.Sprintf("pay_%d_%s", now.UnixMilli(), suffix),
		Signature: "sig_" + suffix,
		PaidAt:    now,
	}, nil
}

func (p *Provider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func randomSuffix() string {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms; keep ids flowing.
		return "0000000000"
	}
	return hex.EncodeToString(b[:])
}
