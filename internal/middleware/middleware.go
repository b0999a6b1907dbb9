// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request logging, CORS, request-id correlation, rate limiting, tracing,
// and panic recovery.
package middleware
