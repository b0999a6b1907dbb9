package model

import "github.com/deppfellow/person-api/internal/validation"

// LoginForm is the urlencoded payload of the login route. The password
// is accepted for shape only; it is never verified, stored, or echoed.
type LoginForm struct {
	Username string `form:"username" json:"username" validate:"required,min=1,max=20"`
	Password string `form:"password" json:"-" validate:"required,min=8"`
}

// Validate applies the declared field constraints.
func (f *LoginForm) Validate() error {
	return validation.Struct(f)
}

// LoginResult is what the login route returns: the username back plus a
// confirmation message, nothing secret.
type LoginResult struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

// ContactForm is the urlencoded payload of the contact route.
type ContactForm struct {
	FirstName string `form:"first_name" json:"first_name" validate:"required,min=1,max=50"`
	LastName  string `form:"last_name" json:"last_name" validate:"required,min=1,max=50"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Message   string `form:"message" json:"message" validate:"required,min=20"`
}

// Validate applies the declared field constraints.
func (f *ContactForm) Validate() error {
	return validation.Struct(f)
}
