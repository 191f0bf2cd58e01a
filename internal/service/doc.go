// Package service contains the application's business logic. Services
// orchestrate domain validation and store access, and translate persistence
// failures into errors the API layer can map to HTTP responses.
package service
