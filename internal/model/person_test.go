package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPerson() Person {
	return Person{
		PersonAttrs: PersonAttrs{
			FirstName: "Nicolas",
			LastName:  "Implant",
			Age:       25,
			Email:     "nicolas@implant.com",
		},
		Password: "supersecret",
	}
}

func TestPersonValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Person)
		wantErr bool
	}{
		{name: "valid minimal", mutate: func(p *Person) {}},
		{name: "valid with optionals", mutate: func(p *Person) {
			married := true
			p.HairColor = HairColorBlack
			p.IsMarried = &married
			p.Website = "https://implant.com"
		}},
		{name: "missing first name", mutate: func(p *Person) { p.FirstName = "" }, wantErr: true},
		{name: "first name too long", mutate: func(p *Person) { p.FirstName = string(make([]byte, 51)) }, wantErr: true},
		{name: "age zero", mutate: func(p *Person) { p.Age = 0 }, wantErr: true},
		{name: "age above bound", mutate: func(p *Person) { p.Age = 116 }, wantErr: true},
		{name: "bad email", mutate: func(p *Person) { p.Email = "not-an-email" }, wantErr: true},
		{name: "unknown hair color", mutate: func(p *Person) { p.HairColor = "purple" }, wantErr: true},
		{name: "bad website", mutate: func(p *Person) { p.Website = "not a url" }, wantErr: true},
		{name: "short password", mutate: func(p *Person) { p.Password = "short" }, wantErr: true},
		{name: "missing password", mutate: func(p *Person) { p.Password = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPerson()
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPersonOutDropsPassword(t *testing.T) {
	p := validPerson()
	out := p.Out()

	assert.Equal(t, p.FirstName, out.FirstName)
	assert.Equal(t, p.LastName, out.LastName)
	assert.Equal(t, p.Age, out.Age)
	assert.Equal(t, p.Email, out.Email)

	raw, err := json.Marshal(out)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.NotContains(t, flat, "password")
}

func TestPersonUpdateHasNoPasswordKey(t *testing.T) {
	update := PersonUpdate{PersonAttrs: validPerson().PersonAttrs}

	flat, err := Flatten(update)
	require.NoError(t, err)
	assert.NotContains(t, flat, "password")
}

func TestLocationValidate(t *testing.T) {
	t.Run("empty location is valid", func(t *testing.T) {
		loc := Location{}
		assert.NoError(t, loc.Validate())
	})

	t.Run("bounded fields", func(t *testing.T) {
		loc := Location{City: string(make([]byte, 51))}
		assert.Error(t, loc.Validate())
	})
}

func TestLoginFormValidate(t *testing.T) {
	form := LoginForm{Username: "nicolas", Password: "supersecret"}
	assert.NoError(t, form.Validate())

	form.Password = "short"
	assert.Error(t, form.Validate())

	form = LoginForm{Username: "this-username-is-way-too-long", Password: "supersecret"}
	assert.Error(t, form.Validate())
}

func TestContactFormValidate(t *testing.T) {
	form := ContactForm{
		FirstName: "Nicolas",
		LastName:  "Implant",
		Email:     "nicolas@implant.com",
		Message:   "I would like to know more about this API.",
	}
	assert.NoError(t, form.Validate())

	form.Message = "too short"
	assert.Error(t, form.Validate())
}
