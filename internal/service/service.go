// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handlers, performs the domain operations
// (existence checks, the person/location record merge, contact
// forwarding), and calls repository methods for data access.
package service
