package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDisjointKeysKeepsEverything(t *testing.T) {
	person := map[string]any{
		"first_name": "Nicolas",
		"last_name":  "Implant",
		"age":        25,
		"email":      "nicolas@implant.com",
	}
	location := map[string]any{
		"city":    "Bogota",
		"state":   "Cundinamarca",
		"country": "Colombia",
	}

	merged := Merge(person, location)

	assert.Equal(t, map[string]any{
		"first_name": "Nicolas",
		"last_name":  "Implant",
		"age":        25,
		"email":      "nicolas@implant.com",
		"city":       "Bogota",
		"state":      "Cundinamarca",
		"country":    "Colombia",
	}, merged)
}

func TestMergeSecondArgumentWinsOnCollision(t *testing.T) {
	left := map[string]any{"city": "A"}
	right := map[string]any{"city": "B"}

	assert.Equal(t, map[string]any{"city": "B"}, Merge(left, right))
}

func TestMergeIsDeterministic(t *testing.T) {
	left := map[string]any{"a": 1, "b": 2}
	right := map[string]any{"b": 3, "c": 4}

	first := Merge(left, right)
	second := Merge(left, right)

	assert.Equal(t, first, second)
}

func TestMergeIdentityOnEmptyCounterpart(t *testing.T) {
	m := map[string]any{"first_name": "Nicolas", "age": 25}

	assert.Equal(t, m, Merge(m, map[string]any{}))
	assert.Equal(t, m, Merge(map[string]any{}, m))
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	left := map[string]any{"a": 1}
	right := map[string]any{"a": 2, "b": 3}

	_ = Merge(left, right)

	assert.Equal(t, map[string]any{"a": 1}, left)
	assert.Equal(t, map[string]any{"a": 2, "b": 3}, right)
}

func TestFlattenUsesJSONFieldNames(t *testing.T) {
	update := PersonUpdate{
		PersonAttrs: PersonAttrs{
			FirstName: "Nicolas",
			LastName:  "Implant",
			Age:       25,
			Email:     "nicolas@implant.com",
		},
	}

	flat, err := Flatten(update)
	require.NoError(t, err)

	// JSON numbers decode as float64 in a map[string]any.
	assert.Equal(t, map[string]any{
		"first_name": "Nicolas",
		"last_name":  "Implant",
		"age":        float64(25),
		"email":      "nicolas@implant.com",
	}, flat)
}

func TestFlattenOmitsUnsetOptionalFields(t *testing.T) {
	loc := Location{City: "Bogota"}

	flat, err := Flatten(loc)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"city": "Bogota"}, flat)
	assert.NotContains(t, flat, "state")
	assert.NotContains(t, flat, "country")
}

func TestMergeRecordsConcreteScenario(t *testing.T) {
	person := PersonUpdate{
		PersonAttrs: PersonAttrs{
			FirstName: "Nicolas",
			LastName:  "Implant",
			Age:       25,
			Email:     "nicolas@implant.com",
		},
	}
	location := Location{
		City:    "Bogota",
		State:   "Cundinamarca",
		Country: "Colombia",
	}

	merged, err := MergeRecords(person, location)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"first_name": "Nicolas",
		"last_name":  "Implant",
		"age":        float64(25),
		"email":      "nicolas@implant.com",
		"city":       "Bogota",
		"state":      "Cundinamarca",
		"country":    "Colombia",
	}, merged)

	// The update record carries no password field, so the merged
	// payload cannot either.
	assert.NotContains(t, merged, "password")
}
