// Package errs defines custom error types and utilities.
//
// Its purpose is to give API clients meaningful, actionable, and
// consistent error payloads:
//
//   - a single JSON error schema for every failure
//   - field-level validation errors for forms and request bodies
//   - optional "action hints" (like redirect) that frontends can interpret
//   - errors that play nicely with Go's standard errors package
package errs
