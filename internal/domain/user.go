package domain

// User is the domain representation of the signed-in customer.
//
// Users are fabricated client-side on login/register; there is no server-side
// identity record behind them.
type User struct {
	ID    UserID
	Name  string
	Email string
	Phone string

	// Avatar is an optional profile image URL; nil means unset.
	Avatar *string
}
