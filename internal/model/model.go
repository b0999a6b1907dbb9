// Package model holds the record shapes exchanged with API clients.
//
// Each record declares its field constraints as validator struct tags;
// the validation package interprets them before any record reaches the
// service layer. Input and output variants of the same record share one
// field set by composition, and sensitive fields are removed through an
// explicit projection step rather than serializer magic.
package model
