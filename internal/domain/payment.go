package domain

import "time"

type PaymentMethod string

const (
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
	PaymentMethodCard       PaymentMethod = "card"
)

// UPIDetails records a UPI payment.
type UPIDetails struct {
	// VPA is the virtual payment address, e.g. "name@okbank".
	VPA string
	// App is the UPI app used (gpay, phonepe, paytm, ...).
	App string
}

// NetBankingDetails records a net-banking payment.
type NetBankingDetails struct {
	Bank   string
	UserID string
}

// CardDetails records a card payment. Only the masked number is retained.
type CardDetails struct {
	MaskedNumber string
	Holder       string
}

// PaymentDetails is a tagged union keyed by Method: exactly one of UPI,
// NetBanking, or Card is set. The gateway identifiers come from the payment
// provider's receipt.
type PaymentDetails struct {
	Method PaymentMethod

	PaymentID string
	OrderID   string
	Signature string

	// Amount is the amount charged, in INR.
	Amount int64
	PaidAt time.Time

	UPI        *UPIDetails
	NetBanking *NetBankingDetails
	Card       *CardDetails
}
