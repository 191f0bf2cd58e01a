// Package api contains the HTTP handlers for the task board service.
// Handlers decode and validate requests, delegate to the service layer,
// and translate service errors into HTTP status codes.
package api
