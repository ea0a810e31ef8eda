// Package api provides the HTTP handlers for the directory service and the
// single place where store errors are mapped to status codes and safe
// client-facing messages.
package api
