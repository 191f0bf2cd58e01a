// Package postgres provides PostgreSQL implementations of the store
// interfaces. Constraint violations reported by the database are mapped to
// the store package's sentinel errors, making the schema's unique and
// foreign key constraints the authoritative integrity checks.
package postgres
