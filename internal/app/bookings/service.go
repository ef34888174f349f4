package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/TECHBREW-hub/TravelSure/internal/app/store"
	"github.com/TECHBREW-hub/TravelSure/internal/domain"
	clockport "github.com/TECHBREW-hub/TravelSure/internal/ports/out/clock"
	"github.com/TECHBREW-hub/TravelSure/internal/ports/out/paymentprovider"
)

// Service creates and cancels bookings against the application store.
type Service struct {
	store    *store.Store
	payments paymentprovider.Provider
	clk      clockport.Clock

	newBookingID func() domain.BookingID
}

func NewService(st *store.Store, payments paymentprovider.Provider, clk clockport.Clock) *Service {
	return &Service{
		store:    st,
		payments: payments,
		clk:      clk,
		newBookingID: func() domain.BookingID {
			return domain.BookingID(uuid.NewString())
		},
	}
}

// SetNewBookingIDForTest overrides booking ID generation for deterministic
// tests. It should not be used in production code.
func (s *Service) SetNewBookingIDForTest(fn func() domain.BookingID) {
	if fn != nil {
		s.newBookingID = fn
	}
}

// Create stamps the draft and appends it to the store's booking list. It is
// the seam the external payment flow invokes on success: payment (method plus
// details) is attached as supplied, without re-validation beyond storage.
//
// Precondition: an authenticated session. Without one the operation fails
// with NOT_AUTHENTICATED rather than silently creating an orphaned booking.
func (s *Service) Create(ctx context.Context, draft Draft, payment *domain.PaymentDetails) (domain.BookingID, error) {
	_ = ctx

	snap := s.store.Snapshot()
	if snap.User == nil {
		return "", &Error{Status: 401, Code: "NOT_AUTHENTICATED", Message: "booking requires an authenticated user"}
	}
	if err := validateDraft(draft); err != nil {
		return "", err
	}

	b := domain.Booking{
		ID:            s.newBookingID(),
		Type:          draft.Type,
		UserID:        snap.User.ID,
		Item:          draft.Item,
		Status:        domain.BookingStatusConfirmed,
		BookingDate:   s.clk.Now(),
		TravelDate:    draft.TravelDate,
		Guests:        draft.Guests,
		TotalAmount:   draft.TotalAmount,
		PaymentStatus: domain.PaymentStatusPaid,
		Payment:       payment,
	}

	s.store.Dispatch(store.AddBooking{Booking: b})
	return b.ID, nil
}

// Purchase validates the payment instrument, charges it through the payment
// provider, and creates the booking with the receipt attached. Gateway
// failures reach the caller as distinguishable errors; nothing is booked on
// failure.
func (s *Service) Purchase(ctx context.Context, draft Draft, ins Instrument) (domain.Booking, error) {
	snap := s.store.Snapshot()
	if snap.User == nil {
		return domain.Booking{}, &Error{Status: 401, Code: "NOT_AUTHENTICATED", Message: "booking requires an authenticated user"}
	}
	if err := validateDraft(draft); err != nil {
		return domain.Booking{}, err
	}
	if err := validateInstrument(ins); err != nil {
		return domain.Booking{}, err
	}

	receipt, err := s.payments.Charge(ctx, paymentprovider.ChargeRequest{
		Amount:      draft.TotalAmount,
		Currency:    "INR",
		Description: fmt.Sprintf("Payment for %s", draft.Item.Name()),
		Customer: paymentprovider.Customer{
			Name:    snap.User.Name,
			Email:   snap.User.Email,
			Contact: snap.User.Phone,
		},
	})
	if err != nil {
		return domain.Booking{}, mapPaymentError(err)
	}

	details := detailsFromReceipt(ins, receipt, draft.TotalAmount)
	id, err := s.Create(ctx, draft, &details)
	if err != nil {
		return domain.Booking{}, err
	}
	return s.Get(ctx, id)
}

// Cancel sets the booking's status to cancelled. The returned bool reports
// whether the booking existed, so callers can distinguish "cancelled" from
// "didn't exist". Cancelling an already-cancelled booking is a no-op;
// completed bookings cannot be cancelled (the transition is one-directional).
func (s *Service) Cancel(ctx context.Context, id domain.BookingID) (bool, error) {
	_ = ctx

	snap := s.store.Snapshot()
	var found *domain.Booking
	for i := range snap.Bookings {
		if snap.Bookings[i].ID == id {
			found = &snap.Bookings[i]
			break
		}
	}
	if found == nil {
		return false, nil
	}

	switch found.Status {
	case domain.BookingStatusCancelled:
		return true, nil
	case domain.BookingStatusCompleted:
		return true, &Error{Status: 409, Code: "BOOKING_COMPLETED", Message: "completed bookings cannot be cancelled"}
	}

	cancelled := domain.BookingStatusCancelled
	s.store.Dispatch(store.UpdateBooking{ID: id, Patch: store.BookingPatch{Status: &cancelled}})
	return true, nil
}

// List returns the current session's bookings in creation order.
func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	_ = ctx
	snap := s.store.Snapshot()
	if snap.User == nil {
		return nil, &Error{Status: 401, Code: "NOT_AUTHENTICATED", Message: "listing bookings requires an authenticated user"}
	}
	return snap.Bookings, nil
}

// Get returns one booking by id.
func (s *Service) Get(ctx context.Context, id domain.BookingID) (domain.Booking, error) {
	_ = ctx
	snap := s.store.Snapshot()
	for _, b := range snap.Bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Booking{}, &Error{Status: 404, Code: "BOOKING_NOT_FOUND", Message: "booking not found"}
}

func validateDraft(d Draft) error {
	switch d.Type {
	case domain.BookingTypePackage, domain.BookingTypeHotel, domain.BookingTypeExperience:
	default:
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid booking type", Details: map[string]any{"type": "must be package, hotel, or experience"}}
	}
	if err := d.Item.Validate(d.Type); err != nil {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid booking item", Details: map[string]any{"item": err.Error()}}
	}
	if d.TravelDate.IsZero() {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid travel date", Details: map[string]any{"travelDate": "must be set"}}
	}
	if d.Guests < 1 {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid guest count", Details: map[string]any{"guests": "must be at least 1"}}
	}
	if d.TotalAmount <= 0 {
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid amount", Details: map[string]any{"totalAmount": "must be positive"}}
	}
	return nil
}

func validateInstrument(ins Instrument) error {
	switch ins.Method {
	case domain.PaymentMethodUPI:
		if ins.UPI == nil || !strings.Contains(ins.UPI.VPA, "@") {
			return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid UPI details", Details: map[string]any{"upiId": "must be a valid UPI ID"}}
		}
	case domain.PaymentMethodNetBanking:
		if ins.NetBanking == nil || ins.NetBanking.Bank == "" || ins.NetBanking.UserID == "" {
			return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid net banking details", Details: map[string]any{"bank": "bank and user id are required"}}
		}
	case domain.PaymentMethodCard:
		if ins.Card == nil || ins.Card.Holder == "" || ins.Card.Expiry == "" || ins.Card.CVV == "" {
			return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid card details", Details: map[string]any{"card": "all card fields are required"}}
		}
		if len(digitsOnly(ins.Card.Number)) < 16 {
			return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid card number", Details: map[string]any{"cardNumber": "must have at least 16 digits"}}
		}
	default:
		return &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid payment method", Details: map[string]any{"method": "must be upi, netbanking, or card"}}
	}
	return nil
}

func detailsFromReceipt(ins Instrument, receipt paymentprovider.Receipt, amount int64) domain.PaymentDetails {
	out := domain.PaymentDetails{
		Method:    ins.Method,
		PaymentID: receipt.PaymentID,
		OrderID:   receipt.OrderID,
		Signature: receipt.Signature,
		Amount:    amount,
		PaidAt:    receipt.PaidAt,
	}
	switch ins.Method {
	case domain.PaymentMethodUPI:
		out.UPI = &domain.UPIDetails{VPA: ins.UPI.VPA, App: ins.UPI.App}
	case domain.PaymentMethodNetBanking:
		out.NetBanking = &domain.NetBankingDetails{Bank: ins.NetBanking.Bank, UserID: ins.NetBanking.UserID}
	case domain.PaymentMethodCard:
		out.Card = &domain.CardDetails{MaskedNumber: maskCardNumber(ins.Card.Number), Holder: ins.Card.Holder}
	}
	return out
}

func maskCardNumber(number string) string {
	d := digitsOnly(number)
	if len(d) < 4 {
		return "****"
	}
	return "****-****-****-" + d[len(d)-4:]
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func mapPaymentError(err error) error {
	switch {
	case errors.Is(err, paymentprovider.ErrDeclined):
		return &Error{Status: 402, Code: "PAYMENT_DECLINED", Message: "payment was declined"}
	case errors.Is(err, paymentprovider.ErrDismissed):
		return &Error{Status: 402, Code: "PAYMENT_DISMISSED", Message: "payment was abandoned"}
	case errors.Is(err, paymentprovider.ErrUnavailable):
		return &Error{Status: 502, Code: "PAYMENT_UNAVAILABLE", Message: "payment gateway unavailable"}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Status: 504, Code: "PAYMENT_TIMEOUT", Message: "payment timed out"}
	default:
		return err
	}
}
