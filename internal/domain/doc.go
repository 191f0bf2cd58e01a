// Package domain defines the core business entities and errors.
// Entities are created through their constructors, which enforce the
// field-level validation rules before the entity ever reaches a store.
package domain
