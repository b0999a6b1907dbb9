package model

import "github.com/deppfellow/person-api/internal/validation"

// HairColor enumerates the accepted hair color values.
type HairColor string

const (
	HairColorWhite  HairColor = "white"
	HairColorBrown  HairColor = "brown"
	HairColorBlack  HairColor = "black"
	HairColorBlonde HairColor = "blonde"
	HairColorRed    HairColor = "red"
	HairColorGreen  HairColor = "green"
	HairColorBlue   HairColor = "blue"
)

// PersonAttrs is the field set shared by every person variant.
//
// It is embedded by the input and update shapes and projected into
// PersonOut, so the constraints are declared exactly once.
type PersonAttrs struct {
	FirstName string    `json:"first_name" validate:"required,min=1,max=50"`
	LastName  string    `json:"last_name" validate:"required,min=1,max=50"`
	Age       int       `json:"age" validate:"required,gte=1,lte=115"`
	Email     string    `json:"email" validate:"required,email"`
	HairColor HairColor `json:"hair_color,omitempty" validate:"omitempty,oneof=white brown black blonde red green blue"`
	IsMarried *bool     `json:"is_married,omitempty"`
	Website   string    `json:"website,omitempty" validate:"omitempty,url"`
}

// Person is the input variant used to create a person. It carries a
// password and therefore must never be serialized back to a client;
// responses go through Out().
type Person struct {
	PersonAttrs
	Password string `json:"password" validate:"required,min=8"`
}

// Validate applies the declared field constraints.
func (p *Person) Validate() error {
	return validation.Struct(p)
}

// PersonOut is the output variant: the shared attributes with no
// password. It is built by explicit field selection so the sensitive
// field cannot leak through a shared ancestor.
type PersonOut struct {
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Age       int       `json:"age"`
	Email     string    `json:"email"`
	HairColor HairColor `json:"hair_color,omitempty"`
	IsMarried *bool     `json:"is_married,omitempty"`
	Website   string    `json:"website,omitempty"`
}

// Out projects the person into its response shape, dropping the password.
func (p Person) Out() PersonOut {
	return PersonOut{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Age:       p.Age,
		Email:     p.Email,
		HairColor: p.HairColor,
		IsMarried: p.IsMarried,
		Website:   p.Website,
	}
}

// PersonUpdate is the update variant. It intentionally has no password
// field: the update path merges the record into a response payload, and
// that merge is defined only over password-free records.
type PersonUpdate struct {
	PersonAttrs
}

// Validate applies the declared field constraints.
func (p *PersonUpdate) Validate() error {
	return validation.Struct(p)
}
