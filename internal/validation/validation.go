// Package validation contains the logic for validating request data.
//
// It uses the go-playground/validator library to enforce rules (length
// bounds, numeric ranges, formats) declared in struct tags, and extracts
// validation failures into a field-level format the client can understand.
package validation
