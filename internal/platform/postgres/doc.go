// Package postgres provides PostgreSQL implementations of the store
// interfaces, mapping of PostgreSQL errors to store sentinel errors, and
// the embedded schema migrations applied at startup.
package postgres
