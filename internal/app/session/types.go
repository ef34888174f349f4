package session

// RegisterInput is the signup form as entered by the user.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	// Avatar is an optional profile image URL; nil means unset.
	Avatar *string
}
