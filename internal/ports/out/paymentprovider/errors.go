package paymentprovider

import "errors"

var (
	// ErrDeclined indicates the gateway refused the charge.
	ErrDeclined = errors.New("payment declined")

	// ErrDismissed indicates the customer abandoned the checkout.
	ErrDismissed = errors.New("payment dismissed")

	// ErrUnavailable indicates the gateway could not be reached.
	ErrUnavailable = errors.New("payment gateway unavailable")
)
