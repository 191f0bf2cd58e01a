// Package mocks provides hand-rolled mock implementations of the store
// interfaces for testing. Each mock offers a working in-memory default
// behavior plus per-method function fields for overriding specific calls.
package mocks
