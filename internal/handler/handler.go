// Package handler is the first layer: the entry point for business
// logic after the router.
//
// It binds and validates requests using the validation package, calls
// the appropriate service, and selects the response model and status
// code. It acts as the interface between the HTTP request and the core
// business logic.
package handler
