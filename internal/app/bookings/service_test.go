package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/TECHBREW-hub/TravelSure/internal/adapters/memory/clock"
	"github.com/TECHBREW-hub/TravelSure/internal/adapters/simulated/paymentprovider"
	"github.com/TECHBREW-hub/TravelSure/internal/app/store"
	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, authenticated bool) (*Service, *store.Store, *clock.ManualClock) {
	t.Helper()
	st := store.New()
	if authenticated {
		st.Dispatch(store.Login{User: domain.User{
			ID:    "1",
			Name:  "John Doe",
			Email: "john@example.com",
			Phone: "+91 9876543210",
		}})
	}
	clk := clock.NewManualClock(testNow)
	svc := NewService(st, paymentprovider.NewProvider(0, clk), clk)
	return svc, st, clk
}

func packageDraft() Draft {
	return Draft{
		Type: domain.BookingTypePackage,
		Item: domain.BookingItem{Package: &domain.TravelPackage{
			ID:            "1",
			DestinationID: "1",
			Name:          "Goa Beach Paradise",
			Price:         12999,
		}},
		TravelDate:  time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC),
		Guests:      2,
		TotalAmount: 12999,
	}
}

func upiInstrument() Instrument {
	return Instrument{
		Method: domain.PaymentMethodUPI,
		UPI:    &UPIInstrument{VPA: "john@okbank", App: "gpay"},
	}
}

func TestCreate_RequiresSession(t *testing.T) {
	t.Parallel()
	svc, st, _ := newTestService(t, false)

	_, err := svc.Create(context.Background(), packageDraft(), nil)
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_AUTHENTICATED" {
		t.Fatalf("err = %v, want NOT_AUTHENTICATED", err)
	}
	if len(st.Snapshot().Bookings) != 0 {
		t.Fatal("no booking must be created without a session")
	}
}

func TestCreate_StampsBooking(t *testing.T) {
	t.Parallel()
	svc, st, _ := newTestService(t, true)
	svc.SetNewBookingIDForTest(func() domain.BookingID { return "bk-1" })

	id, err := svc.Create(context.Background(), packageDraft(), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != "bk-1" {
		t.Fatalf("id = %q, want bk-1", id)
	}

	snap := st.Snapshot()
	if len(snap.Bookings) != 1 {
		t.Fatalf("bookings = %d, want 1", len(snap.Bookings))
	}
	b := snap.Bookings[0]
	if b.UserID != "1" {
		t.Fatalf("UserID = %q, want the session user", b.UserID)
	}
	if b.Status != domain.BookingStatusConfirmed {
		t.Fatalf("Status = %q, want confirmed", b.Status)
	}
	if b.PaymentStatus != domain.PaymentStatusPaid {
		t.Fatalf("PaymentStatus = %q, want paid", b.PaymentStatus)
	}
	if !b.BookingDate.Equal(testNow) {
		t.Fatalf("BookingDate = %v, want clock time %v", b.BookingDate, testNow)
	}
}

func TestCreate_ValidatesDraft(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t, true)

	cases := []struct {
		name   string
		mutate func(*Draft)
	}{
		{"bad type", func(d *Draft) { d.Type = "flight" }},
		{"item mismatch", func(d *Draft) { d.Type = domain.BookingTypeHotel }},
		{"zero travel date", func(d *Draft) { d.TravelDate = time.Time{} }},
		{"zero guests", func(d *Draft) { d.Guests = 0 }},
		{"zero amount", func(d *Draft) { d.TotalAmount = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := packageDraft()
			tc.mutate(&d)
			_, err := svc.Create(context.Background(), d, nil)
			ae := (*Error)(nil)
			if !errors.As(err, &ae) || ae.Status != 422 {
				t.Fatalf("err = %v, want 422 validation error", err)
			}
		})
	}
}

func TestPurchase_AttachesReceipt(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t, true)

	b, err := svc.Purchase(context.Background(), packageDraft(), upiInstrument())
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if b.Payment == nil {
		t.Fatal("payment details should be attached")
	}
	if b.Payment.Method != domain.PaymentMethodUPI {
		t.Fatalf("Method = %q, want upi", b.Payment.Method)
	}
	if !strings.HasPrefix(b.Payment.OrderID, "order_") {
		t.Fatalf("OrderID = %q, want order_ prefix", b.Payment.OrderID)
	}
	if !strings.HasPrefix(b.Payment.PaymentID, "pay_") {
		t.Fatalf("PaymentID = %q, want pay_ prefix", b.Payment.PaymentID)
	}
	if b.Payment.Amount != 12999 {
		t.Fatalf("Amount = %d, want the draft total", b.Payment.Amount)
	}
	if b.Payment.UPI == nil || b.Payment.UPI.VPA != "john@okbank" {
		t.Fatalf("UPI variant = %+v, want the submitted VPA", b.Payment.UPI)
	}
}

func TestPurchase_MasksCardNumber(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t, true)

	ins := Instrument{
		Method: domain.PaymentMethodCard,
		Card: &CardInstrument{
			Number: "4111 1111 1111 1234",
			Expiry: "12/27",
			CVV:    "123",
			Holder: "John Doe",
		},
	}
	b, err := svc.Purchase(context.Background(), packageDraft(), ins)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if b.Payment.Card == nil {
		t.Fatal("card variant should be set")
	}
	if b.Payment.Card.MaskedNumber != "****-****-****-1234" {
		t.Fatalf("MaskedNumber = %q", b.Payment.Card.MaskedNumber)
	}
}

func TestPurchase_ValidatesInstrument(t *testing.T) {
	t.Parallel()
	svc, st, _ := newTestService(t, true)

	cases := []struct {
		name string
		ins  Instrument
	}{
		{"unknown method", Instrument{Method: "cash"}},
		{"upi without vpa", Instrument{Method: domain.PaymentMethodUPI, UPI: &UPIInstrument{VPA: "nope"}}},
		{"netbanking missing bank", Instrument{Method: domain.PaymentMethodNetBanking, NetBanking: &NetBankingInstrument{UserID: "u"}}},
		{"short card number", Instrument{Method: domain.PaymentMethodCard, Card: &CardInstrument{Number: "4111", Expiry: "12/27", CVV: "123", Holder: "J"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Purchase(context.Background(), packageDraft(), tc.ins)
			ae := (*Error)(nil)
			if !errors.As(err, &ae) || ae.Status != 422 {
				t.Fatalf("err = %v, want 422 validation error", err)
			}
		})
	}
	if len(st.Snapshot().Bookings) != 0 {
		t.Fatal("nothing may be booked when the instrument is invalid")
	}
}

func TestCancel(t *testing.T) {
	t.Parallel()
	svc, st, _ := newTestService(t, true)

	id, err := svc.Create(context.Background(), packageDraft(), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	found, err := svc.Cancel(context.Background(), id)
	if err != nil || !found {
		t.Fatalf("Cancel = (%v, %v), want (true, nil)", found, err)
	}
	b, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if b.Status != domain.BookingStatusCancelled {
		t.Fatalf("Status = %q, want cancelled", b.Status)
	}

	// Idempotent on repeat.
	found, err = svc.Cancel(context.Background(), id)
	if err != nil || !found {
		t.Fatalf("repeat Cancel = (%v, %v), want (true, nil)", found, err)
	}

	// Unknown id: found=false, no error, state untouched.
	found, err = svc.Cancel(context.Background(), "nope")
	if err != nil || found {
		t.Fatalf("Cancel(unknown) = (%v, %v), want (false, nil)", found, err)
	}
	if got := st.Snapshot().Bookings[0].Status; got != domain.BookingStatusCancelled {
		t.Fatalf("existing booking status changed to %q", got)
	}
}

func TestCancel_CompletedIsConflict(t *testing.T) {
	t.Parallel()
	svc, st, _ := newTestService(t, true)

	id, err := svc.Create(context.Background(), packageDraft(), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	completed := domain.BookingStatusCompleted
	st.Dispatch(store.UpdateBooking{ID: id, Patch: store.BookingPatch{Status: &completed}})

	found, err := svc.Cancel(context.Background(), id)
	if !found {
		t.Fatal("booking exists, found must be true")
	}
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "BOOKING_COMPLETED" {
		t.Fatalf("err = %v, want BOOKING_COMPLETED conflict", err)
	}
	if got, _ := svc.Get(context.Background(), id); got.Status != completed {
		t.Fatalf("Status = %q, completed bookings must stay completed", got.Status)
	}
}

func TestListAndGet(t *testing.T) {
	t.Parallel()
	svc, _, clk := newTestService(t, true)

	first, err := svc.Create(context.Background(), packageDraft(), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	clk.Advance(time.Hour)
	second, err := svc.Create(context.Background(), packageDraft(), nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	bs, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(bs) != 2 || bs[0].ID != first || bs[1].ID != second {
		t.Fatalf("List order = %v, want creation order [%s %s]", bs, first, second)
	}
	if !bs[1].BookingDate.Equal(testNow.Add(time.Hour)) {
		t.Fatalf("second BookingDate = %v, want advanced clock time", bs[1].BookingDate)
	}

	if _, err := svc.Get(context.Background(), "missing"); err == nil {
		t.Fatal("Get of unknown id should fail")
	}
}

func TestList_RequiresSession(t *testing.T) {
	t.Parallel()
	svc, _, _ := newTestService(t, false)

	_, err := svc.List(context.Background())
	ae := (*Error)(nil)
	if !errors.As(err, &ae) || ae.Code != "NOT_AUTHENTICATED" {
		t.Fatalf("err = %v, want NOT_AUTHENTICATED", err)
	}
}
