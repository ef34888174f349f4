package bookings

import (
	"time"

	"github.com/TECHBREW-hub/TravelSure/internal/domain"
)

// Draft is the caller-supplied booking prior to the service stamping an id,
// creation timestamp, user id, and status. The catalog item is embedded by
// value: the booking keeps the item as it was at purchase time.
type Draft struct {
	Type        domain.BookingType
	Item        domain.BookingItem
	TravelDate  time.Time
	Guests      int
	TotalAmount int64
}

// UPIInstrument is a UPI payment entry form.
type UPIInstrument struct {
	VPA string
	App string
}

// NetBankingInstrument is a net-banking payment entry form.
type NetBankingInstrument struct {
	Bank   string
	UserID string
}

// CardInstrument is a card payment entry form. Number is the full PAN; only
// a masked form is ever stored.
type CardInstrument struct {
	Number string
	Expiry string
	CVV    string
	Holder string
}

// Instrument is the payment entry form for Purchase, tagged by Method.
// Exactly one variant matching Method must be set.
type Instrument struct {
	Method     domain.PaymentMethod
	UPI        *UPIInstrument
	NetBanking *NetBankingInstrument
	Card       *CardInstrument
}
