package model

import "github.com/deppfellow/person-api/internal/validation"

// Location is a free-standing record of where a person lives. Every
// field is optional; when present it is bounded like the person's name
// fields.
type Location struct {
	City    string `json:"city,omitempty" validate:"omitempty,min=1,max=50"`
	State   string `json:"state,omitempty" validate:"omitempty,min=1,max=50"`
	Country string `json:"country,omitempty" validate:"omitempty,min=1,max=50"`
}

// Validate applies the declared field constraints.
func (l *Location) Validate() error {
	return validation.Struct(l)
}
