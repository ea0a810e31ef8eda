// Package store defines the data persistence interfaces of the directory
// service and the sentinel errors their implementations return. It contains
// no storage-engine specifics; those live in internal/platform/postgres.
package store
