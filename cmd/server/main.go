// Package main implements the entry point for the directory API server,
// which serves a paginated user directory and per-user posts over
// PostgreSQL.
package main

import (
	"context"
	"log"
)

// main is the entry point for the directory API server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// run initializes configuration, logging and the database connection,
// wires the stores and handlers together, and runs the HTTP server until
// a shutdown signal arrives.
func run() error {
	app, err := newApplication()
	if err != nil {
		return err
	}
	defer app.cleanup()

	router := app.setupRouter()
	return app.startHTTPServer(context.Background(), router)
}
